package utils

import "tbs/src/models"

// DefaultCountries seeds the nationality and passport-issuing-country
// selectors. The list is cached in redis by the countries endpoint; the
// "None" placeholder is prepended there, not here.
func DefaultCountries() []models.Country {
	return []models.Country{
		{Name: "Egypt", NameAr: "مصر", Code: "EG", DialCode: "+20", Flag: "🇪🇬"},
		{Name: "Saudi Arabia", NameAr: "السعودية", Code: "SA", DialCode: "+966", Flag: "🇸🇦"},
		{Name: "United Arab Emirates", NameAr: "الإمارات", Code: "AE", DialCode: "+971", Flag: "🇦🇪"},
		{Name: "Jordan", NameAr: "الأردن", Code: "JO", DialCode: "+962", Flag: "🇯🇴"},
		{Name: "Kuwait", NameAr: "الكويت", Code: "KW", DialCode: "+965", Flag: "🇰🇼"},
		{Name: "Qatar", NameAr: "قطر", Code: "QA", DialCode: "+974", Flag: "🇶🇦"},
		{Name: "Bahrain", NameAr: "البحرين", Code: "BH", DialCode: "+973", Flag: "🇧🇭"},
		{Name: "Oman", NameAr: "عُمان", Code: "OM", DialCode: "+968", Flag: "🇴🇲"},
		{Name: "Morocco", NameAr: "المغرب", Code: "MA", DialCode: "+212", Flag: "🇲🇦"},
		{Name: "Algeria", NameAr: "الجزائر", Code: "DZ", DialCode: "+213", Flag: "🇩🇿"},
		{Name: "Tunisia", NameAr: "تونس", Code: "TN", DialCode: "+216", Flag: "🇹🇳"},
		{Name: "Libya", NameAr: "ليبيا", Code: "LY", DialCode: "+218", Flag: "🇱🇾"},
		{Name: "Sudan", NameAr: "السودان", Code: "SD", DialCode: "+249", Flag: "🇸🇩"},
		{Name: "Iraq", NameAr: "العراق", Code: "IQ", DialCode: "+964", Flag: "🇮🇶"},
		{Name: "Syria", NameAr: "سوريا", Code: "SY", DialCode: "+963", Flag: "🇸🇾"},
		{Name: "Lebanon", NameAr: "لبنان", Code: "LB", DialCode: "+961", Flag: "🇱🇧"},
		{Name: "Palestine", NameAr: "فلسطين", Code: "PS", DialCode: "+970", Flag: "🇵🇸"},
		{Name: "Yemen", NameAr: "اليمن", Code: "YE", DialCode: "+967", Flag: "🇾🇪"},
		{Name: "Turkey", NameAr: "تركيا", Code: "TR", DialCode: "+90", Flag: "🇹🇷"},
		{Name: "Pakistan", NameAr: "باكستان", Code: "PK", DialCode: "+92", Flag: "🇵🇰"},
		{Name: "Indonesia", NameAr: "إندونيسيا", Code: "ID", DialCode: "+62", Flag: "🇮🇩"},
		{Name: "Malaysia", NameAr: "ماليزيا", Code: "MY", DialCode: "+60", Flag: "🇲🇾"},
		{Name: "United Kingdom", NameAr: "المملكة المتحدة", Code: "GB", DialCode: "+44", Flag: "🇬🇧"},
		{Name: "United States", NameAr: "الولايات المتحدة", Code: "US", DialCode: "+1", Flag: "🇺🇸"},
		{Name: "France", NameAr: "فرنسا", Code: "FR", DialCode: "+33", Flag: "🇫🇷"},
		{Name: "Germany", NameAr: "ألمانيا", Code: "DE", DialCode: "+49", Flag: "🇩🇪"},
	}
}
