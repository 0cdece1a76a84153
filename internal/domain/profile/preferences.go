package profile

import (
	"encoding/json"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

type Notifications struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	SMS       bool `json:"sms"`
	Marketing bool `json:"marketing"`
}

type Preferences struct {
	Notifications Notifications `json:"notifications"`
	Theme         string        `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: Notifications{Email: true, SMS: true},
		Theme:         "system",
	}
}

func (p Preferences) Validate() error {
	switch p.Theme {
	case "light", "dark", "system":
		return nil
	}
	return httperr.ErrBusiness("invalid_theme")
}

// DecodePreferences tolera coluna vazia devolvendo os padrões.
func DecodePreferences(raw []byte) Preferences {
	p := DefaultPreferences()
	if len(raw) == 0 {
		return p
	}
	_ = json.Unmarshal(raw, &p)
	return p
}

func EncodePreferences(p Preferences) ([]byte, error) {
	return json.Marshal(p)
}
