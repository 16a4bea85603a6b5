package main

import (
	"context"
	"log"
	"os"
	"time"

	"notes-client/internal/model"
	"notes-client/internal/repository/rest"
)

const defaultCollection = "notes"

// notesctl - скриптуемый клиент для проверки контракта удаленной коллекции
// без терминального интерфейса
func main() {
	// Получаем параметры подключения из переменных окружения
	baseURL := os.Getenv("NOTES_BASE_URL")
	if baseURL == "" {
		log.Fatal("NOTES_BASE_URL is not set")
	}

	collection := os.Getenv("NOTES_COLLECTION")
	if collection == "" {
		collection = defaultCollection
	}

	repo := rest.NewRepository(rest.Options{
		BaseURL:    baseURL,
		Collection: collection,
		APIKey:     os.Getenv("NOTES_API_KEY"),
		Secret:     os.Getenv("NOTES_SECRET"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "list":
		notes, err := repo.List(ctx)
		if err != nil {
			log.Fatalf("List failed: %v", err)
		}
		log.Printf("Fetched %d notes", len(notes))
		for _, note := range notes {
			log.Printf("  %s  %s  (updated: %s)", note.ID, note.Title, note.UpdatedAt.Format(time.RFC3339))
		}

	case "create":
		if len(os.Args) < 3 {
			usage()
		}
		title := os.Args[2]
		content := ""
		if len(os.Args) > 3 {
			content = os.Args[3]
		}

		// Проверяем заметку до обращения к сети
		candidate := model.Note{Title: title, Content: content}
		if err := candidate.Validate(); err != nil {
			log.Fatalf("Invalid note: %v", err)
		}

		note, err := repo.Create(ctx, title, content)
		if err != nil {
			log.Fatalf("Create failed: %v", err)
		}
		log.Printf("Created note %s", note.ID)

	case "update":
		if len(os.Args) < 4 {
			usage()
		}
		id, title := os.Args[2], os.Args[3]
		content := ""
		if len(os.Args) > 4 {
			content = os.Args[4]
		}

		candidate := model.Note{ID: id, Title: title, Content: content}
		if err := candidate.Validate(); err != nil {
			log.Fatalf("Invalid note: %v", err)
		}

		note, err := repo.Update(ctx, id, title, content)
		if err != nil {
			log.Fatalf("Update failed: %v", err)
		}
		log.Printf("Updated note %s", note.ID)

	case "delete":
		if len(os.Args) < 3 {
			usage()
		}
		if err := repo.Delete(ctx, os.Args[2]); err != nil {
			log.Fatalf("Delete failed: %v", err)
		}
		log.Printf("Deleted note %s", os.Args[2])

	default:
		usage()
	}
}

func usage() {
	log.Println("Usage: notesctl <command>")
	log.Println("Commands:")
	log.Println("  list")
	log.Println("  create <title> [content]")
	log.Println("  update <id> <title> [content]")
	log.Println("  delete <id>")
	log.Println("Environment: NOTES_BASE_URL, NOTES_COLLECTION, NOTES_API_KEY, NOTES_SECRET")
	os.Exit(1)
}
