package serviceImp

type marketSite struct {
	Location string
	State    string
	Market   string
}

var marketSites = []marketSite{
	{"Mumbai", "Maharashtra", "Vashi APMC"},
	{"Delhi", "Delhi", "Azadpur Mandi"},
	{"Bhopal", "Madhya Pradesh", "Bhopal Mandi"},
	{"Jaipur", "Rajasthan", "Jaipur Grain Market"},
	{"Indore", "Madhya Pradesh", "Indore APMC"},
	{"Hyderabad", "Telangana", "Begum Bazaar"},
}
