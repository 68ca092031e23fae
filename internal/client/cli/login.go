package cli

import (
	"context"
	"errors"
	"log"

	"github.com/mpetrashin/tokengate/internal/common"
)

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		var verr *common.ValidationError
		switch {
		case errors.As(err, &verr):
			log.Printf("Login rejected: %s", verr.Message)
		case errors.Is(err, common.ErrorUnauthorized):
			log.Printf("Login unsuccessful: invalid credentials")
		default:
			log.Printf("Login unsuccessful: %v", err)
		}
		return
	}

	if err := a.session.Login(ctx, token); err != nil {
		log.Printf("error saving session: %v", err)
		return
	}

	log.Printf("Login successful")
}
