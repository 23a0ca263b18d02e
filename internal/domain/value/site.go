package value

// Site identifies a launch site, e.g. "CCAFS LC-40".
type Site string

// AllSites is the selection sentinel meaning "every site".
const AllSites Site = "ALL"

func (s Site) String() string {
	return string(s)
}

func (s Site) IsAll() bool {
	return s == AllSites
}
