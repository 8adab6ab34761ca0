package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/auction"
	"github.com/Rishikesh183/auction-tracker/internal/config"
	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
	"github.com/Rishikesh183/auction-tracker/internal/views"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// viewSet holds one viewer's projections
type viewSet struct {
	current *views.CurrentPlayerView
	history *views.BiddingHistoryView
	teams   *views.TeamsView
	players *views.AllPlayersView
	recent  *views.RecentCompletedView
}

// Client represents a connected spectator or admin screen
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	viewerID string
	views    *viewSet
	send     chan []byte
	events   chan feed.Event
}

// Message is the framing for everything written to a viewer
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// HandleViewer upgrades a viewer connection, seeds its view set from a store
// snapshot, and starts its pumps. The optional viewer query param identifies
// a returning viewer so close transitions are not replayed after a reload.
func HandleViewer(hub *Hub, db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID := c.Query("viewer")
		if viewerID == "" {
			viewerID = uuid.NewString()
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}

		ctx := c.Request.Context()
		lastAnimated := loadLastAnimated(ctx, viewerID)

		vs, err := loadViewSet(ctx, db, cfg, lastAnimated)
		if err != nil {
			// A failed snapshot degrades to an empty board; the feed will
			// fill in whatever changes next.
			log.Printf("[WS] snapshot load failed for viewer %s: %v", viewerID, err)
		}

		client := &Client{
			hub:      hub,
			conn:     conn,
			viewerID: viewerID,
			views:    vs,
			send:     make(chan []byte, 256),
			events:   make(chan feed.Event, 256),
		}

		// Queue the full snapshot before registering. Once registered the
		// hub may deliver deltas, and the view loop must be the only
		// goroutine touching the view set.
		client.sendSnapshot()
		hub.register <- client

		go client.writePump()
		go client.viewLoop()
		go client.readPump()
	}
}

// loadViewSet runs the initial snapshot queries. Any error leaves the
// affected view empty rather than failing the connection.
func loadViewSet(ctx context.Context, db *sqlx.DB, cfg *config.Config, lastAnimated string) (*viewSet, error) {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	latest, err := auction.LatestPlayer(ctx, db)
	keep(err)
	bids, err := auction.RecentBids(ctx, db, "", cfg.BidHistoryLimit)
	keep(err)
	teams, err := auction.AllTeams(ctx, db)
	keep(err)
	sold, err := auction.PlayersByStatus(ctx, db, models.StatusCompleted)
	keep(err)
	unsold, err := auction.PlayersByStatus(ctx, db, models.StatusUnsold)
	keep(err)
	recent, err := auction.RecentCompleted(ctx, db, cfg.RecentCompletedLimit)
	keep(err)

	return &viewSet{
		current: views.NewCurrentPlayerView(latest, lastAnimated),
		history: views.NewBiddingHistoryView("", cfg.BidHistoryLimit, bids),
		teams:   views.NewTeamsView(teams),
		players: views.NewAllPlayersView(sold, unsold),
		recent:  views.NewRecentCompletedView(cfg.RecentCompletedLimit, recent),
	}, firstErr
}

// viewLoop is the viewer's single-threaded event loop: apply each feed event
// to the projections, then push the views that changed. It is the sole
// writer to send after the snapshot, so it closes send when the hub closes
// its event channel.
func (c *Client) viewLoop() {
	defer close(c.send)

	for ev := range c.events {
		playerChanged, transition := c.views.current.Apply(ev)
		historyChanged := c.views.history.Apply(ev)
		teamsChanged := c.views.teams.Apply(ev)
		partitionChanged := c.views.players.Apply(ev)
		recentChanged := c.views.recent.Apply(ev)

		if playerChanged {
			c.queue("current_player", gin.H{"live": c.views.current.Live, "display": c.views.current.Display})
		}
		if historyChanged {
			c.queue("bidding_history", c.views.history.Bids)
		}
		if teamsChanged {
			c.queue("teams", c.views.teams.Teams)
		}
		if partitionChanged || recentChanged {
			c.queue("all_players", gin.H{"sold": c.views.players.Sold, "unsold": c.views.players.Unsold})
			c.queue("recent_completed", c.views.recent.Players)
		}
		if teamsChanged || partitionChanged {
			c.queue("stats", views.ComputeGlobalStats(c.views.players, c.views.teams))
		}
		if transition != nil {
			c.queue("transition", transition)
			saveLastAnimated(context.Background(), c.viewerID, transition.Player.ID)
		}
	}
}

// sendSnapshot pushes the full initial state after connect
func (c *Client) sendSnapshot() {
	c.queue("current_player", gin.H{"live": c.views.current.Live, "display": c.views.current.Display})
	c.queue("bidding_history", c.views.history.Bids)
	c.queue("teams", c.views.teams.Teams)
	c.queue("all_players", gin.H{"sold": c.views.players.Sold, "unsold": c.views.players.Unsold})
	c.queue("recent_completed", c.views.recent.Players)
	c.queue("stats", views.ComputeGlobalStats(c.views.players, c.views.teams))
}

// queue marshals a message onto the send buffer, dropping when full
func (c *Client) queue(msgType string, data interface{}) {
	payload, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		log.Printf("[WS] failed to encode %s message: %v", msgType, err)
		return
	}

	select {
	case c.send <- payload:
	default:
		log.Printf("[WS] send buffer full for viewer %s, dropping %s", c.viewerID, msgType)
	}
}

// readPump drains the connection; viewers never send anything meaningful,
// but reading is what detects the close.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump writes queued messages and keepalive pings to the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] write error for viewer %s: %v", c.viewerID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] ping error for viewer %s: %v", c.viewerID, err)
				return
			}
		}
	}
}
