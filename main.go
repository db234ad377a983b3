package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"feltpoker.com/server/game"
	"feltpoker.com/server/internal"
	"feltpoker.com/server/internal/handhistory"
	"feltpoker.com/server/nats"
	"feltpoker.com/server/rest"
	"feltpoker.com/server/room"
	"feltpoker.com/server/util"
	"feltpoker.com/server/util/random"
)

var restAddr *string
var waitForAPI *bool
var mainLogger = util.GetZeroLogger("main::main", nil)

func init() {
	restAddr = flag.String("rest-addr", ":8080", "listen address of the admin API")
	waitForAPI = flag.Bool("wait-for-api", true, "block until the api server is ready")
}

func main() {
	// Global random seed. Deck shuffles use their own source.
	rand.Seed(random.NewSeed())

	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	logLevel := util.Env.GetZeroLogLogLevel()
	fmt.Printf("Setting log level to %s\n", logLevel)
	zerolog.SetGlobalLevel(logLevel)
	flag.Parse()

	config := game.DefaultGameConfig()
	if configFile := util.Env.GetGameConfigFile(); configFile != "" {
		var err error
		config, err = game.ParseGameConfig(configFile)
		if err != nil {
			return errors.Wrap(err, "Error while parsing game config")
		}
	}

	apiServerURL := util.Env.GetApiServerURL()
	if *waitForAPI {
		waitForAPIServer(apiServerURL)
	}

	persist, err := newPersistProvider()
	if err != nil {
		return errors.Wrap(err, "Error while creating persistence provider")
	}

	roomClient, err := room.NewClient(apiServerURL)
	if err != nil {
		return errors.Wrap(err, "Error while creating room client")
	}

	var history game.HandHistory
	if util.Env.IsPostgresConfigured() {
		store, err := handhistory.NewStore(internal.GetHandHistoryConnStr())
		if err != nil {
			return errors.Wrap(err, "Error while connecting to hand history db")
		}
		history = store
	} else {
		mainLogger.Warn().Msg("Postgres is not configured. Hand history will not be recorded.")
	}

	manager, err := game.NewManager(persist, roomClient, history, config)
	if err != nil {
		return errors.Wrap(err, "Error while creating game manager")
	}

	runWithNats(manager)
	return nil
}

func newPersistProvider() (game.PersistGameState, error) {
	method := util.Env.GetPersistMethod()
	switch method {
	case "memory":
		return game.NewMemoryGameTracker(), nil
	case "redis":
		redisURL := fmt.Sprintf("%s:%d", util.Env.GetRedisHost(), util.Env.GetRedisPort())
		return game.NewRedisGameTracker(redisURL, util.Env.GetRedisPW(), util.Env.GetRedisDB()), nil
	}
	return nil, fmt.Errorf("Unknown persist method %s", method)
}

func waitForAPIServer(apiServerURL string) {
	readyURL := fmt.Sprintf("%s/internal/ready", apiServerURL)
	client := http.Client{Timeout: 2 * time.Second}
	for {
		mainLogger.Info().Msgf("Checking API server ready (%s)", readyURL)
		resp, err := client.Get(readyURL)
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			break
		}
		if err == nil {
			mainLogger.Error().Msgf("%s returned %d", readyURL, resp.StatusCode)
			resp.Body.Close()
		}
		time.Sleep(1 * time.Second)
	}
}

func runWithNats(manager *game.Manager) {
	mainLogger.Info().Msg("Running the server with NATS")
	natsURL := util.Env.GetNatsURL()
	mainLogger.Info().Msgf("NATS URL: %s", natsURL)

	nc, err := natsgo.Connect(natsURL)
	if err != nil {
		mainLogger.Error().Msgf("Error connecting to NATS server, error: %v", err)
		return
	}
	roomManager := nats.NewRoomManager(nc, manager)

	// run rest server
	go rest.RunRestServer(roomManager, manager, *restAddr)

	select {}
}
