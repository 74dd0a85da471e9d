package xmpp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"
)

type (
	// Config for the plugin.
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

var ErrMissingConfig = errors.New("missing xmpp config")

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) < 2 {
		return jid
	}
	return parts[1]
}

func (x Xmpp) Enabled() bool {
	return len(x.Config.Jid) != 0 && len(x.Config.Password) != 0 && len(x.Config.To) != 0
}

func (x Xmpp) options() xmpp.Options {
	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}

	return xmpp.Options{
		Host:          host,
		User:          x.Config.Jid,
		Password:      x.Config.Password,
		NoTLS:         true,
		StartTLS:      true,
		Debug:         false,
		Session:       false,
		Status:        "xa",
		StatusMessage: "Watching the wind",
	}
}

// Send delivers a chat message to the configured recipient.
func (x Xmpp) Send(message string) error {

	if !x.Enabled() {
		log.Warn("missing xmpp config")
		return ErrMissingConfig
	}

	xmpp.DefaultConfig = tls.Config{
		InsecureSkipVerify: true,
	}

	options := x.options()

	log.Debugf("create xmpp client for %s on %s", options.User, options.Host)
	talk, err := options.NewClient()
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", options.Host, err)
	}
	defer talk.Close()

	log.Debugf("send message to %s", x.Config.To)
	if _, err := talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message}); err != nil {
		return fmt.Errorf("sending to %s: %w", x.Config.To, err)
	}

	return nil
}
