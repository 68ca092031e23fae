package cli

import (
	"context"
	"log"
)

func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	log.Printf("Logged out")
}
