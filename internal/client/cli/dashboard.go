package cli

import (
	"context"
	"fmt"
)

// dashboardRecommendations is how many matches the dashboard shows.
const dashboardRecommendations = 5

// Dashboard greets the user and shows their top university matches plus
// the unread-notification count, mirroring the landing page after login.
func (a *App) Dashboard(ctx context.Context) error {
	acc, err := a.api.Me(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load dashboard"))
		return err
	}
	if acc.Profile.FullName != "" {
		a.userName = acc.Profile.FullName
	}

	fmt.Fprintf(a.out, "\nWelcome back, %s!\n", orNA(acc.Profile.FullName))

	unis, err := a.api.Recommend(ctx, acc.User.ID, dashboardRecommendations)
	if err != nil {
		a.notify.Warning(detailOr(err, "Recommendations are unavailable right now"))
	} else if len(unis) == 0 {
		fmt.Fprintln(a.out, "No recommendations yet. Complete your profile to get matches.")
	} else {
		fmt.Fprintln(a.out, "\nYour top matches:")
		for i, u := range unis {
			printUniversityCard(a.out, i+1, u)
		}
	}

	page, err := a.api.ListNotifications(ctx, acc.User.ID, true)
	if err == nil && page.UnreadCount > 0 {
		a.notify.Info(fmt.Sprintf("You have %d unread notifications (run 'notifications')", page.UnreadCount))
	}
	return nil
}
