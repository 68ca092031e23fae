package cli

import (
	"context"
	"errors"
	"log"

	"github.com/mpetrashin/tokengate/internal/common"
)

func (a *App) Register(ctx context.Context) {

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

	user, err := a.client.SignUp(ctx, email, password)
	if err != nil {
		var verr *common.ValidationError
		switch {
		case errors.As(err, &verr):
			log.Printf("Registration rejected: %s", verr.Message)
		case errors.Is(err, common.ErrorAlreadyExists):
			log.Printf("Registration rejected: user with this email already exists")
		default:
			log.Printf("Registration unsuccessful: %v", err)
		}
		return
	}

	log.Printf("Registered %s, you can now log in", user.Email)
}
