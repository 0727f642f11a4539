package entity

// MarketSession is a market's trading window in whole UTC hours.
// Open is inclusive, Close exclusive; no overnight wraparound.
type MarketSession struct {
	Open  int `yaml:"open"`
	Close int `yaml:"close"`
}

// Contains reports whether the given UTC hour falls inside the window.
func (s MarketSession) Contains(utcHour int) bool {
	return s.Open <= utcHour && utcHour < s.Close
}
