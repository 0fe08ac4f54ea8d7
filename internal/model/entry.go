package model

type Entry struct {
	EntryID  int64  `json:"entryId"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
	UserID   int64  `json:"userId"`
}
