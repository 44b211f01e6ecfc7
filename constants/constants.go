package constants

import (
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type ServerConf struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type SearchConf struct {
	DefaultDimension int `yaml:"defaultDimension"`
	MaxDimension     int `yaml:"maxDimension"`
	MaxSessions      int `yaml:"maxSessions"`
	// Delay between websocket frames, in milliseconds.
	FrameIntervalMs int `yaml:"frameIntervalMs"`
}

type Conf struct {
	Env    string     `yaml:"env"`
	Server ServerConf `yaml:"server"`
	Search SearchConf `yaml:"search"`
}

var ENV string
var SERVER ServerConf
var SEARCH SearchConf

// Init loads the defaults, then the YAML file at path if path is not empty,
// then the environment. ENV=SERVER listens on every interface.
func Init(path string) error {
	conf := defaults(os.Getenv("ENV"))
	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, &conf); err != nil {
			return errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := overrideFromEnv(&conf); err != nil {
		return err
	}
	if conf.Search.DefaultDimension <= 0 || conf.Search.MaxDimension < conf.Search.DefaultDimension {
		return errors.Errorf("bad dimensions: default %d, max %d", conf.Search.DefaultDimension, conf.Search.MaxDimension)
	}
	ENV, SERVER, SEARCH = conf.Env, conf.Server, conf.Search
	return nil
}

func defaults(env string) Conf {
	conf := Conf{
		Env: env,
		Server: ServerConf{
			Host: "localhost",
			Port: 9993,
		},
		Search: SearchConf{
			DefaultDimension: 50,
			MaxDimension:     500,
			MaxSessions:      64,
			FrameIntervalMs:  16,
		},
	}
	if env == "SERVER" {
		conf.Server.Host = "0.0.0.0"
	}
	return conf
}

func overrideFromEnv(conf *Conf) error {
	if v := os.Getenv("PATHFINDER_HOST"); v != "" {
		conf.Server.Host = v
	}
	ints := map[string]*int{
		"PATHFINDER_PORT":              &conf.Server.Port,
		"PATHFINDER_DEFAULT_DIMENSION": &conf.Search.DefaultDimension,
		"PATHFINDER_MAX_DIMENSION":     &conf.Search.MaxDimension,
		"PATHFINDER_MAX_SESSIONS":      &conf.Search.MaxSessions,
		"PATHFINDER_FRAME_INTERVAL_MS": &conf.Search.FrameIntervalMs,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", key)
		}
		*dst = n
	}
	return nil
}

func Addr() string {
	return SERVER.Host + ":" + strconv.Itoa(SERVER.Port)
}

func FrameInterval() time.Duration {
	return SEARCH.FrameInterval()
}

// FrameInterval is the pause between streamed frames.
func (c SearchConf) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// Response codes carried in the "ret" field of API replies.
const (
	RET_OK             = 1000
	RET_BAD_REQUEST    = 1001
	RET_NOT_FOUND      = 1002
	RET_TOO_MANY       = 1003
	RET_INTERNAL_ERROR = 1004
	RET_CANCELLED      = 1005
)
