package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedRecord represents the lifetime record stored on disk
type SavedRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Poet   string `json:"poet"`
	Arena  string `json:"arena"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "poetry-duel",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecord loads the record from disk. It returns an empty record when
// nothing is saved yet or persistence is unavailable.
func LoadRecord() *SavedRecord {
	if !gdataInitialized || gdataManager == nil {
		return &SavedRecord{}
	}

	data, err := gdataManager.LoadItem("record")
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return &SavedRecord{}
	}
	if len(data) == 0 {
		return &SavedRecord{}
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return &SavedRecord{}
	}
	return &record
}

// SaveRecord saves the record to disk
func SaveRecord(r *SavedRecord) error {
	if !gdataInitialized || gdataManager == nil || r == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("record", data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
		return err
	}
	return nil
}
