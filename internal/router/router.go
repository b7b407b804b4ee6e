package router

import "strings"

// ToolID identifies one of the fixed destination views.
type ToolID string

const (
	ToolChat     ToolID = "chat"
	ToolIDCard   ToolID = "idcard"
	ToolStock    ToolID = "stock"
	ToolSocial   ToolID = "social"
	ToolAppStore ToolID = "appstore"
	ToolEmail    ToolID = "email"
	ToolVoice    ToolID = "voice"
	ToolAssetLib ToolID = "assetlib"
)

type route struct {
	tool     ToolID
	keywords []string
}

// routes is scanned in order; first match wins, so slice order is the
// tie-break rule when a query hits keywords of two tools. Keywords are
// bilingual (Arabic and English) and matched as plain substrings of the
// lower-cased query.
var routes = []route{
	{ToolIDCard, []string{"بطاقة", "هوية", "id", "card", "identity"}},
	{ToolStock, []string{"بورصة", "سهم", "stock", "market", "بورصه"}},
	{ToolSocial, []string{"بث", "لايف", "live", "social", "تواصل", "هدية", "diamonds"}},
	{ToolAppStore, []string{"متجر", "تطبيق", "store", "app", "تحميل"}},
	{ToolEmail, []string{"بريد", "إيميل", "email", "رسالة"}},
	{ToolVoice, []string{"صوت", "دبلجة", "voice", "dub"}},
	{ToolAssetLib, []string{"أصول", "مكتبة", "assets", "icon", "أيقونة"}},
}

// Route maps a freeform query to the first tool whose keyword list hits, or
// ToolChat when nothing matches.
func Route(query string) ToolID {
	q := strings.ToLower(query)
	for _, r := range routes {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.tool
			}
		}
	}
	return ToolChat
}
