package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"graphics.gd/classdb/Camera3D"
	"graphics.gd/classdb/Engine"
	"graphics.gd/classdb/Environment"
	"graphics.gd/classdb/FileAccess"
	"graphics.gd/classdb/Node3D"
	"graphics.gd/classdb/OS"
	"graphics.gd/classdb/WorldEnvironment"
	"graphics.gd/variant/Color"
	"graphics.gd/variant/Float"
	"graphics.gd/variant/Vector3"
	"lira.talks.services/halo/protocol/lira"
	"runtime.link/api"
	"runtime.link/api/rest"
	"runtime.link/api/xray"
)

// LiraHost is where the companion backend lives by default, override
// it with the HALO_BACKEND environment variable.
const LiraHost = "http://localhost:8000"

func backendHost() string {
	if host := os.Getenv("HALO_BACKEND"); host != "" {
		return host
	}
	return LiraHost
}

// Client is the root of the Halo scene: a camera looking at the orb, a
// chat box and a session with the Lira backend. The in-flight state of
// the current request is the processing signal the orb visualizes.
type Client struct {
	Node3D.Extension[Client] `gd:"HaloClient"`

	FocalPoint struct {
		Node3D.Instance

		Lens struct {
			Node3D.Instance

			Camera Camera3D.Instance
		}
	}

	orb *Orb
	ui  *UI

	lira lira.API

	processing atomic.Bool
	turns      chan Turn
}

// Turn is one completed exchange with the companion.
type Turn struct {
	Text    string
	Reply   string
	Emotion string
}

// UserState survives restarts as JSON in the user directory. The user
// ID keys long-term memory on the backend. The session ID is minted
// fresh per launch so short-term memory stays per-conversation, it is
// never persisted.
var UserState struct {
	User    string `json:"user_id"`
	Session string `json:"-"`
}

func NewClient() *Client {
	client := &Client{turns: make(chan Turn, 10)}
	client.loadUserState()
	if UserState.User == "" {
		UserState.User = uuid.NewString()
		client.saveUserState()
	}
	UserState.Session = uuid.NewString()
	return client
}

func (client *Client) Ready() {
	client.lira = api.Import[lira.API](rest.API, backendHost(), rest.Header("Accept", "application/json"))

	client.FocalPoint.Lens.Camera.AsNode3D().SetPosition(Vector3.New(0, 0, 6))
	client.FocalPoint.Lens.Camera.AsNode3D().LookAt(Vector3.Zero)

	// The orb draws unshaded additive points, so the scene is just a
	// dark backdrop for them to accumulate against.
	env := Environment.New()
	env.SetBackgroundMode(Environment.BgColor)
	env.SetBackgroundColor(Color.RGBA{0.02, 0.02, 0.05, 1})
	worldenv := WorldEnvironment.New()
	worldenv.SetEnvironment(env)
	client.AsNode().AddChild(worldenv.AsNode())

	orb := new(Orb)
	orb.processing = client.Processing
	client.orb = orb
	client.AsNode().AddChild(orb.AsNode())

	ui := new(UI)
	ui.client = client
	client.ui = ui
	client.AsNode().AddChild(ui.AsNode())

	fmt.Println("Halo client ready")
}

// Processing reports whether a reply is being generated right now. The
// orb polls this once per frame, a flip may be observed one frame late.
func (client *Client) Processing() bool { return client.processing.Load() }

// Send submits one chat turn to the backend. The processing flag stays
// raised for the lifetime of the request, one request at a time.
func (client *Client) Send(text string) {
	if !client.processing.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer client.processing.Store(false)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply, err := client.generate(ctx, text)
		if err != nil {
			Engine.Raise(fmt.Errorf("failed to generate reply: %w", err))
			return
		}
		client.turns <- Turn{Text: text, Reply: reply.Output, Emotion: reply.Emotion.FirstLabel}
	}()
}

func (client *Client) generate(ctx context.Context, text string) (lira.Response, error) {
	reply, err := client.lira.Generate(ctx, lira.Request{
		User:    UserState.User,
		Session: UserState.Session,
		Text:    text,
	})
	if err != nil {
		return lira.Response{}, xray.New(err)
	}
	return reply, nil
}

func (client *Client) Process(dt Float.X) {
	select {
	case turn := <-client.turns:
		client.ui.append(turn)
	default:
	}
}

func (client *Client) saveUserState() {
	buf, err := json.Marshal(&UserState)
	if err != nil {
		Engine.Raise(fmt.Errorf("failed to marshal user state: %w", err))
		return
	}
	userfile := FileAccess.Open(OS.GetUserDataDir()+"/user.json", FileAccess.Write)
	if userfile == FileAccess.Nil {
		Engine.Raise(fmt.Errorf("failed to open user state for writing"))
		return
	}
	userfile.StoreBuffer(buf)
	userfile.Close()
}

func (client *Client) loadUserState() {
	userfile := FileAccess.Open(OS.GetUserDataDir()+"/user.json", FileAccess.Read)
	if userfile == FileAccess.Nil {
		return // first launch
	}
	buf := userfile.GetBuffer(userfile.GetLength())
	userfile.Close()
	if err := json.Unmarshal(buf, &UserState); err != nil {
		Engine.Raise(fmt.Errorf("failed to unmarshal user state: %w", err))
	}
}
