// Command client creates a search session on a running server, streams its
// frames over websocket and draws each one in the terminal.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"Pathfinder/astar"
	"Pathfinder/models"

	"github.com/gorilla/websocket"
	"github.com/logrusorgru/aurora"
)

var (
	addr    = flag.String("addr", "localhost:9993", "server address")
	layout  = flag.String("layout", "", "layout file to search")
	colors  = flag.Bool("color", true, "colored output")
	redraw  = flag.Bool("redraw", true, "clear the screen between frames")
	onlyEnd = flag.Bool("final", false, "print only the final frame")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	if *layout == "" {
		log.Fatal("-layout is required")
	}

	text, err := ioutil.ReadFile(*layout)
	if err != nil {
		log.Fatal("read layout: ", err)
	}
	id, err := createSession(*addr, text)
	if err != nil {
		log.Fatal("create session: ", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/sessions/" + id + "/ws"}
	log.Printf("connecting to %s", u.String())
	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial: ", err)
	}
	defer c.Close()

	done := make(chan struct{})
	au := aurora.NewAurora(*colors)

	go func() {
		defer close(done)
		var last *models.StepFrame
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.Println("read: ", err)
				}
				if last != nil && *onlyEnd {
					draw(au, last, false)
				}
				return
			}
			frame, err := models.DecodeStepFrame(message)
			if err != nil {
				log.Println("decode: ", err)
				return
			}
			last = frame
			if !*onlyEnd {
				draw(au, frame, *redraw)
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-interrupt:
			log.Println("interrupt")
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				log.Println("write close: ", err)
				return
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		}
	}
}

func createSession(addr string, layout []byte) (string, error) {
	grid, err := astar.ParseLayout(string(layout))
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(models.GridRequest{Layout: grid.Rows()})
	if err != nil {
		return "", err
	}
	resp, err := http.Post("http://"+addr+"/sessions", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%s: %s", resp.Status, b)
	}
	var session models.SessionResponse
	if err := json.Unmarshal(b, &session); err != nil {
		return "", err
	}
	return session.ID, nil
}

func draw(au aurora.Aurora, frame *models.StepFrame, clearScreen bool) {
	if clearScreen {
		fmt.Print("\033[H\033[2J")
	}
	for _, row := range frame.Rows() {
		for j := 0; j < len(row); j++ {
			fmt.Printf("%v ", astar.Colorize(au, row[j]))
		}
		fmt.Println()
	}
	status := frame.SearchStatus()
	fmt.Printf("step %d  expanded %d  %v\n", frame.Step, frame.Expanded, status)
	if status == astar.Found {
		fmt.Printf("path length %d\n", len(frame.Path)-1)
	}
}
