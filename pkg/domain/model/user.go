package model

// User is the author of a comment or an issue. It has no identity of its own
// in the catalog and is stored together with its owner.
type User struct {
	ID        string `json:"id" yaml:"id" firestore:"id"`
	Username  string `json:"username" yaml:"username" firestore:"username"`
	Name      string `json:"name" yaml:"name" firestore:"name"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url" firestore:"avatar_url"`
	WebURL    string `json:"web_url" yaml:"web_url" firestore:"web_url"`
}
