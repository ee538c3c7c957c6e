package models

// Country backs the nationality and passport-issuing-country selectors.
type Country struct {
	Name     string `json:"name"`
	NameAr   string `json:"nameAr"`
	Code     string `json:"code"`
	DialCode string `json:"dialCode"`
	Flag     string `json:"flag"`
}
