package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/teamops-io/personnel-cli/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/term"
)

func loginCmd() *cobra.Command {
	var (
		email       string
		useSSO      bool
		clientID    string
		skipBrowser bool
	)

	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"signin"},
		Short:   "Authenticate with the personnel API",
		Long: `Authenticate with the personnel API and save the session token.

By default prompts for email and password. With --sso, performs an OAuth2
authorization-code flow (PKCE) against the API's identity provider instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAPIClient()
			if err != nil {
				return wrapError("create API client", err)
			}

			var token string
			if useSSO {
				token, err = performSSOLogin(clientID, skipBrowser)
				if err != nil {
					return wrapError("SSO login", err)
				}
			} else {
				if email == "" {
					email, err = promptForEmail()
					if err != nil {
						return err
					}
				}

				password, err := promptForPassword()
				if err != nil {
					return err
				}

				token, err = client.Login(cmd.Context(), email, password)
				if err != nil {
					return err
				}
			}

			if err := config.SetToken(token); err != nil {
				return wrapError("save session token", err)
			}

			printSuccessMessage("Logged in successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().BoolVar(&useSSO, "sso", false, "Authenticate through the identity provider instead of email/password")
	cmd.Flags().StringVar(&clientID, "client-id", "teamops-cli", "OAuth2 client ID for --sso")
	cmd.Flags().BoolVar(&skipBrowser, "skip-browser", false, "Skip opening browser for --sso")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Aliases: []string{"signout"},
		Short:   "Clear the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return wrapError("clear session token", err)
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect authentication state",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether a session token is saved",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()

			fmt.Printf("API address: %s\n", cfg.API.Address)
			if cfg.API.Token == "" {
				printFailedMessage("Not logged in. Run 'teamops login' to authenticate.")
				return nil
			}
			printSuccessMessage("Logged in (session token saved)")
			return nil
		},
	})

	return cmd
}

func promptForEmail() (string, error) {
	validate := func(input string) error {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return fmt.Errorf("email cannot be empty")
		}
		if !strings.Contains(trimmed, "@") {
			return fmt.Errorf("enter a valid email address")
		}
		return nil
	}

	prompt := promptui.Prompt{
		Label:    "Email",
		Validate: validate,
	}

	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("email input cancelled: %w", err)
	}
	return strings.TrimSpace(result), nil
}

func promptForPassword() (string, error) {
	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", wrapError("read password", err)
	}
	if len(passwordBytes) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}
	return string(passwordBytes), nil
}

// performSSOLogin runs the OAuth2 authorization-code flow with PKCE against
// the personnel API's identity provider and returns the bearer token.
func performSSOLogin(clientID string, skipBrowser bool) (string, error) {
	cfg := config.GetConfig()
	address := cfg.API.Address
	if apiAddr != "" {
		address = apiAddr
	}

	redirectURI := "http://localhost:45450/sso/callback"

	oauthConfig := &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Scopes:      []string{"openid", "profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/oauth/authorize", address),
			TokenURL: fmt.Sprintf("%s/oauth/token", address),
		},
	}

	// PKCE; the CLI client is public and holds no secret.
	verifier := oauth2.GenerateVerifier()
	authURL := oauthConfig.AuthCodeURL("state", oauth2.S256ChallengeOption(verifier))

	var authCode string
	var authError error
	var wg sync.WaitGroup

	if !skipBrowser {
		server, serverCh := startCallbackServer("45450")
		defer func() {
			_ = server.Shutdown(context.Background())
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case result := <-serverCh:
				if result.Error != nil {
					authError = result.Error
				} else {
					authCode = result.Code
				}
			case <-time.After(5 * time.Minute):
				authError = fmt.Errorf("no callback received within 5 minutes")
			}
		}()

		fmt.Printf("Listening for the sign-in callback on port 45450\n")
		fmt.Printf("Opening your browser to sign in. If nothing opens, go to:\n  %s\n", authURL)

		if err := browser.OpenURL(authURL); err != nil {
			fmt.Printf("Could not launch a browser (%v); open the URL above yourself.\n", err)
		}

		fmt.Printf("Waiting for the identity provider to redirect back...\n")
		wg.Wait()

		if authError != nil {
			return "", authError
		}
	} else {
		fmt.Printf("Sign in at:\n  %s\n", authURL)
		fmt.Print("Paste the authorization code from the callback URL: ")
		if _, err := fmt.Scanln(&authCode); err != nil {
			return "", wrapError("read authorization code", err)
		}
	}

	if authCode == "" {
		return "", fmt.Errorf("no authorization code received")
	}

	return exchangeCodeForToken(oauthConfig, authCode, verifier)
}

type callbackResult struct {
	Code  string
	State string
	Error error
}

func startCallbackServer(port string) (*http.Server, <-chan callbackResult) {
	resultCh := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/sso/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		state := r.URL.Query().Get("state")
		errorParam := r.URL.Query().Get("error")
		errorDesc := r.URL.Query().Get("error_description")

		if errorParam != "" {
			msg := fmt.Sprintf("identity provider rejected the sign-in: %s", errorParam)
			if errorDesc != "" {
				msg += fmt.Sprintf(" (%s)", errorDesc)
			}
			resultCh <- callbackResult{Error: fmt.Errorf("%s", msg)}
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprintf(w, "<html><body><h2>Sign-in did not complete</h2><p>%s</p><p>Close this tab and retry from the terminal.</p></body></html>", msg)
			return
		}

		if code == "" {
			resultCh <- callbackResult{Error: fmt.Errorf("callback carried no authorization code")}
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprintf(w, "<html><body><h2>Sign-in did not complete</h2><p>The callback carried no authorization code.</p><p>Close this tab and retry from the terminal.</p></body></html>")
			return
		}

		resultCh <- callbackResult{Code: code, State: state}
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "<html><body><h2>Signed in</h2><p>TeamOps CLI has your session. This tab can be closed.</p></body></html>")
	})

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			resultCh <- callbackResult{Error: wrapError("callback server", err)}
		}
	}()

	return server, resultCh
}

// exchangeCodeForToken exchanges the authorization code for a bearer token
func exchangeCodeForToken(oauthConfig *oauth2.Config, authCode, verifier string) (string, error) {
	ctx := context.Background()

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	token, err := oauthConfig.Exchange(ctx, authCode, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", wrapError("exchange code for token", err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("no access token received from identity provider")
	}

	return token.AccessToken, nil
}
