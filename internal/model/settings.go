package model

// SiteSettings is the singleton record loaded from settings.json.
type SiteSettings struct {
	SiteName     string       `json:"siteName"`
	Logo         string       `json:"logo"`
	Contact      ContactInfo  `json:"contact"`
	SocialMedia  SocialMedia  `json:"socialMedia"`
	WorkingHours WorkingHours `json:"workingHours"`
	SEO          SEO          `json:"seo"`
	Features     []Feature    `json:"features"`
	Stats        Stats        `json:"stats"`
}

type ContactInfo struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	FullAddress string `json:"fullAddress"`
	MapEmbed    string `json:"mapEmbed"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

type WorkingHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Stats struct {
	YearsOfExperience int `json:"yearsOfExperience"`
	SuccessRate       int `json:"successRate"`
	TotalCustomers    int `json:"totalCustomers"`
	Advisors          int `json:"advisors"`
}

// DefaultSiteSettings returns the record served when settings.json cannot be
// read or parsed. Each call returns a fresh value.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName: "Mavi Sigorta",
		Logo:     "/images/logo.png",
		Contact: ContactInfo{
			Phone:       "+90 (212) 555 0123",
			Email:       "info@mavisigorta.net",
			Address:     "Büyükçekmece, İstanbul",
			FullAddress: "Cumhuriyet Mahallesi, Atatürk Caddesi No: 123, Büyükçekmece/İstanbul",
			MapEmbed:    "",
		},
		SocialMedia: SocialMedia{},
		WorkingHours: WorkingHours{
			Weekdays: "09:00 - 19:00",
			Saturday: "09:00 - 17:00",
			Sunday:   "Kapalı",
		},
		SEO: SEO{
			Title:       "Mavi Sigorta",
			Description: "İstanbul Büyükçekmece Sigorta Acentesi",
			Keywords:    []string{},
		},
		Features: []Feature{},
		Stats: Stats{
			YearsOfExperience: 15,
			SuccessRate:       95,
			TotalCustomers:    5000,
			Advisors:          8,
		},
	}
}
