package evds

// Response is the envelope the EVDS service returns for a series query.
type Response struct {
	TotalCount int    `json:"totalCount"`
	Items      []Item `json:"items"`
}

// Item is one observation in a series response. EVDS encodes every value
// as a string and uses null for dates without an observation, so the
// series fields are pointers. The JSON key is the series code with dots
// replaced by underscores.
type Item struct {
	Date      string  `json:"Tarih"`
	UsdBuying *string `json:"TP_DK_USD_A"`
	Ppi       *string `json:"TP_TOPTANFIY_T1"`
}
