package cli

import (
	"context"
	"fmt"
	"log"
)

// WhoAmI prints the identity derived from the current token. An invalid or
// expired token is healed to the anonymous state by the session store, so a
// nil user here simply means "not logged in".
func (a *App) WhoAmI(ctx context.Context) {
	u, err := a.session.CurrentUser(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "User ID: %s (session expires %s)\n", u.UserID, u.ExpiresAt.Format("15:04:05 2006-01-02"))
}
