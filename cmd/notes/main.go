package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"notes-client/internal/config"
	"notes-client/internal/controller"
	"notes-client/internal/repository"
	"notes-client/internal/repository/memory"
	"notes-client/internal/repository/rest"
	"notes-client/internal/tui"
)

const (
	defaultConfigFile = "config.yml"
	defaultLogFile    = "notes-client.log"
	defaultCollection = "notes"
)

func main() {
	configPath := flag.String("config", defaultConfigFile, "path to config file")
	memoryMode := flag.Bool("memory", false, "use in-memory store instead of the remote collection")
	flag.Parse()

	// Загружаем конфигурацию из файла
	appConfig, err := config.InitConfig[config.Config](*configPath)
	if err != nil {
		log.Fatalf("Error initializing config: %v", err)
	}

	// Терминал занят интерфейсом, логи уходят в файл
	logFile := defaultLogFile
	if appConfig.Logger != nil && appConfig.Logger.File != "" {
		logFile = appConfig.Logger.File
	}
	f, err := tea.LogToFile(logFile, "notes")
	if err != nil {
		log.Fatalf("Error opening log file: %v", err)
	}
	defer f.Close()

	// Инициализация компонентов (DI): Repository → Controller → TUI
	var noteRepo repository.NoteRepository
	if *memoryMode {
		noteRepo = memory.NewRepository()
		log.Println("Initialized in-memory repository (map-based)")
	} else {
		remote := appConfig.Remote
		if remote == nil {
			remote = &config.ConfigRemote{}
		}
		client := appConfig.Client
		if client == nil {
			client = &config.ConfigClient{}
		}
		collection := remote.Collection
		if collection == "" {
			collection = defaultCollection
		}

		noteRepo = rest.NewRepository(rest.Options{
			BaseURL:        remote.BaseURL,
			Collection:     collection,
			APIKey:         remote.APIKey,
			Secret:         remote.Secret,
			RequestTimeout: time.Duration(client.RequestTimeout) * time.Second,
			RateLimitRPS:   client.RateLimitRPS,
			RateLimitBurst: client.RateLimitBurst,
		})
		log.Printf("Initialized REST repository for %s/%s", remote.BaseURL, collection)
	}

	events := controller.NewEvents()
	sub := events.Subscribe()
	defer events.Unsubscribe(sub)

	ctrl := controller.New(noteRepo, events)
	log.Println("Initialized controller")

	program := tea.NewProgram(tui.New(ctrl, sub), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
