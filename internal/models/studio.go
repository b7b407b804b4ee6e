package models

// Plain (non-persisted) models backing the auxiliary studio views. These are
// client-only simulations populated by the services with seeded or randomized
// data.

type IDCard struct {
	CardType   string `json:"cardType"`
	IDNumber   string `json:"idNumber"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	City       string `json:"city"`
	Gender     string `json:"gender"`
	BloodType  string `json:"bloodType"`
	ExtraField string `json:"extraField"`
	PhotoURL   string `json:"photoUrl"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
}

type StockTransaction struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"` // "buy" | "sell"
	Amount int     `json:"amount"`
	Price  float64 `json:"price"`
	Date   string  `json:"date"`
}

type StockQuote struct {
	Price     float64   `json:"price"`
	PrevPrice float64   `json:"prevPrice"`
	Trend     string    `json:"trend"` // "up" | "down"
	History   []float64 `json:"history"`
}

type Streamer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Avatar   string   `json:"avatar"`
	Cover    string   `json:"cover"`
	Viewers  string   `json:"viewers"`
	Diamonds int64    `json:"diamonds"`
	Level    int      `json:"level"`
	Tags     []string `json:"tags"`
	Role     string   `json:"role"`
	JoinDate string   `json:"joinDate"`
}

type Gift struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Cost  int64  `json:"cost"`
}

type LiveChatEntry struct {
	User   string `json:"user"`
	Text   string `json:"text"`
	IsGift bool   `json:"isGift,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Role   string `json:"role"`
}

type Email struct {
	ID      string `json:"id"`
	Folder  string `json:"folder"` // "inbox" | "sent" | "drafts" | "trash"
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Preview string `json:"preview"`
	Body    string `json:"body,omitempty"`
	Time    string `json:"time"`
	IsRead  bool   `json:"isRead"`
	Avatar  string `json:"avatar,omitempty"`
}

type MarketApp struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Category    string  `json:"category"` // "web" | "tools" | "ai" | "games"
	Developer   string  `json:"developer"`
	Rating      float64 `json:"rating"`
	Downloads   string  `json:"downloads"`
	Description string  `json:"description"`
	Installed   bool    `json:"installed"`
}

type Asset struct {
	ID   string `json:"id"`
	Type string `json:"type"` // "icon" | "bg" | "ui"
	URL  string `json:"url"`
	Name string `json:"name"`
}

type DubbingJob struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Style    string `json:"style"`
	Progress int    `json:"progress"`
	Done     bool   `json:"done"`
}
