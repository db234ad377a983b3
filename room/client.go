package room

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"feltpoker.com/server/game"
	"feltpoker.com/server/util"
)

var clientLogger = util.GetZeroLogger("room::client", nil)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fetches room rosters from the api server. It keeps the last
// roster that each room returned so a flaky api server does not stall
// hand transitions; the cached roster is used only after the retries
// are exhausted.
type Client struct {
	apiServerURL string
	httpClient   *http.Client
	maxRetries   int
	retryDelay   time.Duration
	lastRosters  *lru.Cache
}

// NewClient builds a roster client against the api server base URL.
func NewClient(apiServerURL string) (*Client, error) {
	lastRosters, err := lru.New(4096)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize roster cache")
	}
	return &Client{
		apiServerURL: apiServerURL,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		maxRetries:   3,
		retryDelay:   500 * time.Millisecond,
		lastRosters:  lastRosters,
	}, nil
}

// Roster returns the members currently seated in a room.
func (c *Client) Roster(roomID string) ([]game.RoomMember, error) {
	url := fmt.Sprintf("%s/internal/rooms/%s/members", c.apiServerURL, roomID)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(c.retryDelay)
		}
		members, err := c.fetchRoster(url)
		if err != nil {
			lastErr = err
			clientLogger.Error().
				Str("room", roomID).
				Msgf("Failed to fetch roster from api server (%s). Error: %s", c.apiServerURL, err)
			continue
		}
		c.lastRosters.Add(roomID, members)
		return members, nil
	}

	if cached, ok := c.lastRosters.Get(roomID); ok {
		clientLogger.Warn().
			Str("room", roomID).
			Msg("Api server unreachable, using last known roster")
		return cached.([]game.RoomMember), nil
	}
	return nil, errors.Wrapf(lastErr, "Unable to fetch roster for room %s", roomID)
}

func (c *Client) fetchRoster(url string) ([]game.RoomMember, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("Unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var members []game.RoomMember
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, err
	}
	return members, nil
}
