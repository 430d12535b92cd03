package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"beenama/internal/store"
	"beenama/internal/tmdb"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a TMDB account",
	Long: `Login runs TMDB's browser approval flow: a request token is created,
you approve it on themoviedb.org, and the approved token is exchanged
for a session stored locally.`,
	RunE: loginRun,
}

func loginRun(cmd *cobra.Command, args []string) error {
	c, st, err := tmdbClient()
	if err != nil {
		return err
	}
	defer st.Close()

	token, err := c.NewRequestToken()
	if err != nil {
		return fmt.Errorf("creating request token: %w", err)
	}

	fmt.Println("Approve this application in your browser:")
	fmt.Println("  " + tmdb.ApprovalURL(token))
	fmt.Print("Press Enter when done... ")
	bufio.NewReader(os.Stdin).ReadString('\n')

	sessionID, err := c.CreateSession(token)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	c.SetSession(sessionID)

	account, err := c.Account()
	if err != nil {
		return fmt.Errorf("fetching account: %w", err)
	}

	err = st.SaveSession(store.Session{
		SessionID: sessionID,
		AccountID: account.ID,
		Username:  account.Username,
	})
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Logged in as %s.\n", account.Username)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ClearSession(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := requireSession(st)
		if err != nil {
			return err
		}
		fmt.Printf("%s (account %d)\n", sess.Username, sess.AccountID)
		return nil
	},
}
