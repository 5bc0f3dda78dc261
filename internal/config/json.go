package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		OwnerUserID string `json:"owner_user_id"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		StorageAddress string   `json:"storage_address"`
		CRMAddress     string   `json:"crm_address"`
		APIToken       string   `json:"api_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PollInterval  Duration `json:"poll_interval"`
		WorkerCount   int      `json:"worker_count"`
		BackoffBase   Duration `json:"backoff_base"`
		BackoffFactor float64  `json:"backoff_factor"`
		BackoffCap    Duration `json:"backoff_cap"`
	} `json:"workers,omitempty"`

	Monitor struct {
		ProbeURL      string   `json:"probe_url"`
		ProbeInterval Duration `json:"probe_interval"`
		ProbeTimeout  Duration `json:"probe_timeout"`
	} `json:"monitor,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		FilePath   string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			OwnerUserID: jsonCfg.App.OwnerUserID,
			Version:     jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BlobDir: jsonCfg.Storage.Files.BlobDir,
			},
		},
		Adapter: Adapter{
			StorageAddress: jsonCfg.Adapter.StorageAddress,
			CRMAddress:     jsonCfg.Adapter.CRMAddress,
			APIToken:       jsonCfg.Adapter.APIToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PollInterval:  time.Duration(jsonCfg.Workers.PollInterval),
			WorkerCount:   jsonCfg.Workers.WorkerCount,
			BackoffBase:   time.Duration(jsonCfg.Workers.BackoffBase),
			BackoffFactor: jsonCfg.Workers.BackoffFactor,
			BackoffCap:    time.Duration(jsonCfg.Workers.BackoffCap),
		},
		Monitor: Monitor{
			ProbeURL:      jsonCfg.Monitor.ProbeURL,
			ProbeInterval: time.Duration(jsonCfg.Monitor.ProbeInterval),
			ProbeTimeout:  time.Duration(jsonCfg.Monitor.ProbeTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Log: Log{
			FilePath:   jsonCfg.Log.FilePath,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
