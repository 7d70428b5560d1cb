package adminctl

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/server/auth"
	"github.com/dmitrijs2005/battleapi/internal/server/config"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/repomanager"
)

// Options holds the command-line parameters of the tool. Email and
// username fall back to interactive prompts when omitted; the password is
// always prompted for so it never lands in shell history.
type Options struct {
	DatabaseDSN string
	Email       string
	UserName    string
	BcryptCost  int
}

func ParseOptions(args []string) (*Options, error) {
	defaults := &config.Config{}
	defaults.LoadDefaults()

	opts := &Options{}
	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	fs.StringVar(&opts.DatabaseDSN, "d", defaults.DatabaseDSN, "database DSN")
	fs.StringVar(&opts.Email, "e", "", "email of the user to create")
	fs.StringVar(&opts.UserName, "u", "", "username of the user to create")
	fs.IntVar(&opts.BcryptCost, "b", defaults.BcryptCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// Run creates one active user, prompting for any missing fields on stdin.
func Run(ctx context.Context, opts *Options, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	email := opts.Email
	if email == "" {
		var err error
		if email, err = promptText(reader, "Email", out); err != nil {
			return err
		}
	}

	username := opts.UserName
	if username == "" {
		var err error
		if username, err = promptText(reader, "Username", out); err != nil {
			return err
		}
	}

	if email == "" || username == "" {
		return errors.New("email and username are required")
	}

	password, err := promptPassword(out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	digest, err := auth.HashPassword(string(password), opts.BcryptCost)
	if err != nil {
		return err
	}

	db, err := repomanager.Open(ctx, opts.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	user, err := rm.Users(db).Create(ctx, &models.User{
		Email:        email,
		UserName:     username,
		PasswordHash: digest,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return fmt.Errorf("email or username already registered")
		}
		return err
	}

	fmt.Fprintf(out, "Created user %s (%s)\n", user.UserName, user.ID)
	return nil
}

// Main is the entrypoint used by cmd/adminctl.
func Main() {
	opts, err := ParseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := Run(context.Background(), opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}
