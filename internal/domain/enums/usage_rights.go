package enums

type UsageRights string

const (
	UsagePortfolioOnly         UsageRights = "PORTFOLIO_ONLY"
	UsageSocialMediaPersonal   UsageRights = "SOCIAL_MEDIA_PERSONAL"
	UsageSocialMediaCommercial UsageRights = "SOCIAL_MEDIA_COMMERCIAL"
	UsageWebsitePersonal       UsageRights = "WEBSITE_PERSONAL"
	UsageWebsiteCommercial     UsageRights = "WEBSITE_COMMERCIAL"
	UsageEditorialPrint        UsageRights = "EDITORIAL_PRINT"
	UsageCommercialPrint       UsageRights = "COMMERCIAL_PRINT"
	UsageAdvertising           UsageRights = "ADVERTISING"
	UsageFullCommercial        UsageRights = "FULL_COMMERCIAL"
	UsageExclusiveBuyout       UsageRights = "EXCLUSIVE_BUYOUT"
	UsageCustom                UsageRights = "CUSTOM"
)

var usageRightsLabels = map[UsageRights]string{
	UsagePortfolioOnly:         "Portfolio Use Only",
	UsageSocialMediaPersonal:   "Social Media (Personal)",
	UsageSocialMediaCommercial: "Social Media (Commercial)",
	UsageWebsitePersonal:       "Website (Personal)",
	UsageWebsiteCommercial:     "Website (Commercial)",
	UsageEditorialPrint:        "Editorial Print",
	UsageCommercialPrint:       "Commercial Print",
	UsageAdvertising:           "Advertising",
	UsageFullCommercial:        "Full Commercial Rights",
	UsageExclusiveBuyout:       "Exclusive Buyout",
	UsageCustom:                "Custom",
}

func UsageRightsOptions() []UsageRights {
	return []UsageRights{
		UsagePortfolioOnly, UsageSocialMediaPersonal, UsageSocialMediaCommercial,
		UsageWebsitePersonal, UsageWebsiteCommercial, UsageEditorialPrint,
		UsageCommercialPrint, UsageAdvertising, UsageFullCommercial,
		UsageExclusiveBuyout, UsageCustom,
	}
}

func (u UsageRights) Label() string {
	if label, ok := usageRightsLabels[u]; ok {
		return label
	}
	return humanize(string(u))
}
