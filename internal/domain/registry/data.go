package registry

import "github.com/ryanmarc/olympic-dashboard/internal/domain/model"

// defaultEntries is the built-in country table. Order matters: Resolve scans
// it front to back when falling back to substring containment.
var defaultEntries = []model.CountryRegistryEntry{ //nolint:gochecknoglobals // static dataset
	{Name: "Norway", Code: "NOR", Flag: "\U0001F1F3\U0001F1F4", Page: "Norway"},
	{Name: "Germany", Code: "GER", Flag: "\U0001F1E9\U0001F1EA", Page: "Germany"},
	{Name: "United States", Code: "USA", Flag: "\U0001F1FA\U0001F1F8", Page: "United_States"},
	{Name: "Sweden", Code: "SWE", Flag: "\U0001F1F8\U0001F1EA", Page: "Sweden"},
	{Name: "Austria", Code: "AUT", Flag: "\U0001F1E6\U0001F1F9", Page: "Austria"},
	{Name: "Canada", Code: "CAN", Flag: "\U0001F1E8\U0001F1E6", Page: "Canada"},
	{Name: "Switzerland", Code: "SUI", Flag: "\U0001F1E8\U0001F1ED", Page: "Switzerland"},
	{Name: "France", Code: "FRA", Flag: "\U0001F1EB\U0001F1F7", Page: "France"},
	{Name: "Netherlands", Code: "NED", Flag: "\U0001F1F3\U0001F1F1", Page: "Netherlands"},
	{Name: "Italy", Code: "ITA", Flag: "\U0001F1EE\U0001F1F9", Page: "Italy"},
	{Name: "Japan", Code: "JPN", Flag: "\U0001F1EF\U0001F1F5", Page: "Japan"},
	{Name: "China", Code: "CHN", Flag: "\U0001F1E8\U0001F1F3", Page: "China"},
	{Name: "South Korea", Code: "KOR", Flag: "\U0001F1F0\U0001F1F7", Page: "South_Korea"},
	{Name: "Finland", Code: "FIN", Flag: "\U0001F1EB\U0001F1EE", Page: "Finland"},
	{Name: "Czech Republic", Code: "CZE", Flag: "\U0001F1E8\U0001F1FF", Page: "Czech_Republic"},
	{Name: "Czechia", Code: "CZE", Flag: "\U0001F1E8\U0001F1FF", Page: "Czech_Republic"},
	{Name: "Slovenia", Code: "SLO", Flag: "\U0001F1F8\U0001F1EE", Page: "Slovenia"},
	{Name: "Australia", Code: "AUS", Flag: "\U0001F1E6\U0001F1FA", Page: "Australia"},
	{Name: "Great Britain", Code: "GBR", Flag: "\U0001F1EC\U0001F1E7", Page: "Great_Britain"},
	{Name: "Poland", Code: "POL", Flag: "\U0001F1F5\U0001F1F1", Page: "Poland"},
	{Name: "New Zealand", Code: "NZL", Flag: "\U0001F1F3\U0001F1FF", Page: "New_Zealand"},
	{Name: "Spain", Code: "ESP", Flag: "\U0001F1EA\U0001F1F8", Page: "Spain"},
	{Name: "Slovakia", Code: "SVK", Flag: "\U0001F1F8\U0001F1F0", Page: "Slovakia"},
	{Name: "Belgium", Code: "BEL", Flag: "\U0001F1E7\U0001F1EA", Page: "Belgium"},
	{Name: "Belarus", Code: "BLR", Flag: "\U0001F1E7\U0001F1FE", Page: "Belarus"},
	{Name: "Ukraine", Code: "UKR", Flag: "\U0001F1FA\U0001F1E6", Page: "Ukraine"},
	{Name: "Kazakhstan", Code: "KAZ", Flag: "\U0001F1F0\U0001F1FF", Page: "Kazakhstan"},
	{Name: "ROC", Code: "ROC", Flag: "\U0001F3F3\U0000FE0F", Page: "ROC"},
	{Name: "Russia", Code: "RUS", Flag: "\U0001F1F7\U0001F1FA", Page: "Russia"},
	{Name: "Estonia", Code: "EST", Flag: "\U0001F1EA\U0001F1EA", Page: "Estonia"},
	{Name: "Latvia", Code: "LAT", Flag: "\U0001F1F1\U0001F1FB", Page: "Latvia"},
	{Name: "Lithuania", Code: "LTU", Flag: "\U0001F1F1\U0001F1F9", Page: "Lithuania"},
	{Name: "Hungary", Code: "HUN", Flag: "\U0001F1ED\U0001F1FA", Page: "Hungary"},
	{Name: "Croatia", Code: "CRO", Flag: "\U0001F1ED\U0001F1F7", Page: "Croatia"},
	{Name: "Denmark", Code: "DEN", Flag: "\U0001F1E9\U0001F1F0", Page: "Denmark"},
	{Name: "Ireland", Code: "IRL", Flag: "\U0001F1EE\U0001F1EA", Page: "Ireland"},
	{Name: "Romania", Code: "ROU", Flag: "\U0001F1F7\U0001F1F4", Page: "Romania"},
	{Name: "Bulgaria", Code: "BUL", Flag: "\U0001F1E7\U0001F1EC", Page: "Bulgaria"},
	{Name: "Serbia", Code: "SRB", Flag: "\U0001F1F7\U0001F1F8", Page: "Serbia"},
	{Name: "Monaco", Code: "MON", Flag: "\U0001F1F2\U0001F1E8", Page: "Monaco"},
	{Name: "Liechtenstein", Code: "LIE", Flag: "\U0001F1F1\U0001F1EE", Page: "Liechtenstein"},
	{Name: "Andorra", Code: "AND", Flag: "\U0001F1E6\U0001F1E9", Page: "Andorra"},
}
