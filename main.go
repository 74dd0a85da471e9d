package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/angle-server/angle"
	"github.com/a-bouts/angle-server/api"
	"github.com/a-bouts/angle-server/wind"
	"github.com/a-bouts/angle-server/xmpp"
)

func main() {

	fs := flag.NewFlagSet("angle-server", flag.ExitOnError)
	var (
		port         = fs.Int("port", 8888, "listen port")
		gribDir      = fs.String("grib-dir", "grib-data", "directory holding the GRIB2 wind files")
		refresh      = fs.Uint64("refresh", 15, "seconds between two scans of the grib directory")
		debug        = fs.Bool("debug", false, "debug logs")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile the wind requests")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
		watchName    = fs.String("watch-name", "", "name of the watched position, empty to disable")
		watchLat     = fs.Float64("watch-lat", 0, "latitude of the watched position")
		watchLon     = fs.Float64("watch-lon", 0, "longitude of the watched position")
		watchWiggle  = fs.Float64("watch-wiggle", angle.PiQuarter/4, "wind shift in radians ignored by the watcher")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix()); err != nil {
		log.WithError(err).Fatal("Error parsing configuration")
	}

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	x := xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}

	log.Infof("Load winds from '%s'", *gribDir)
	winds := wind.InitWinds(*gribDir, *refresh)

	if *watchName != "" {
		if !x.Enabled() {
			log.Warnf("Watching '%s' without xmpp config, shifts are only logged", *watchName)
		}
		winds.Watch(wind.NewWatcher(*watchName, *watchLat, *watchLon, *watchWiggle, x))
	}

	router := api.InitServer(*cpuprofile, winds)

	logger := log.StandardLogger()
	handler := handlers.RecoveryHandler(handlers.RecoveryLogger(logger))(router)
	handler = handlers.LoggingHandler(logger.Writer(), handler)

	log.Infof("Start server on port %d", *port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", *port), handler))
}
