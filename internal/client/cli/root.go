package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abylaikhan/uniadvisor/internal/client/session"
)

// getStatus renders the prompt suffix: the user's name (when known) and the
// stored-session state.
func (a *App) getStatus(ctx context.Context) string {
	token, err := a.store.AccessToken(ctx)
	if err != nil {
		return ""
	}
	status := session.TokenStatus(token, time.Now())

	s := ""
	if a.userName != "" && status != session.StatusLoggedOut {
		s = a.userName + " "
	}
	s += status.String()
	return fmt.Sprintf("(%s)", s)
}

// Root runs the command loop until EOF or an exit command. Commands and
// prompts share one buffered reader so no input is swallowed between them.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to uniadvisor (type 'help' for commands)")

	watchCtx, stopWatcher := context.WithCancel(ctx)
	defer stopWatcher()
	go func() {
		a.StartNotificationWatcher(watchCtx, notificationPollInterval)
	}()

	for {
		fmt.Fprintf(a.out, "uni %s> ", a.getStatus(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if len(line) == 0 {
				break
			}
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp(ctx)

		case "login":
			_ = a.Login(ctx)
		case "otp":
			_ = a.LoginOTP(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "settings":
			_ = a.Settings(ctx)

		case "apply":
			_ = a.Apply(ctx)
		case "applications":
			status := ""
			if len(args) > 0 {
				status = strings.Join(args, " ")
			}
			_ = a.ListApplications(ctx, status)
		case "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <application-id>")
				continue
			}
			_ = a.OpenApplication(ctx, args[0])
		case "upload":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: upload <file-path> <document-type>")
				continue
			}
			_ = a.UploadDocument(ctx, args[0], args[1])
		case "submit":
			_ = a.SubmitApplication(ctx)
		case "notifications":
			_ = a.Notifications(ctx)

		case "assessment":
			_ = a.Assessment(ctx)
		case "results":
			_ = a.AssessmentResults(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp(ctx context.Context) {
	if a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Available commands: dashboard, profile, settings, apply, applications, open <id>, upload <path> <type>, submit, notifications, assessment, results, chat, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, otp, register, exit")
	}
}
