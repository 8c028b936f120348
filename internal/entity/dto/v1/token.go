package dto

// CalnetToken is the JSON form of a freshly issued bridge token, returned when
// no post-login redirect target was stored.
type CalnetToken struct {
	Token string `json:"token"`
}
