package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"studylab/auth"
	"studylab/config"
	"studylab/handlers"
	"studylab/session"
	"studylab/store"
	"studylab/tutor"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func openStorage() store.Storage {
	// DECKS_FILE selects plain-file persistence; the default is the
	// database configured in config.Connect.
	if path := os.Getenv("DECKS_FILE"); path != "" {
		return store.NewFileStorage(path)
	}

	config.Connect()
	storage, err := store.NewDBStorage(config.Database)
	if err != nil {
		log.Fatal("failed to initialize deck storage: ", err)
	}
	return storage
}

func main() {
	config.LoadEnv()

	deckStore := store.Open(openStorage())

	h := &handlers.Handler{
		Store:    deckStore,
		Sessions: session.NewManager(),
		Tutor: tutor.NewClient(tutor.Config{
			APIKey:      config.Env.TutorAPIKey,
			BaseURL:     config.Env.TutorBaseURL,
			Model:       config.Env.TutorModel,
			VisionModel: config.Env.VisionModel,
		}),
	}

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/login", handlers.Login)

	// Decks
	mux.HandleFunc("GET /api/decks", h.GetDecks)
	mux.HandleFunc("POST /api/decks", auth.Middleware(h.CreateDeck))
	mux.HandleFunc("GET /api/decks/{deckID}", h.GetDeckByID)
	mux.HandleFunc("POST /api/decks/{deckID}/delete-request", auth.Middleware(h.RequestDeleteDeck))
	mux.HandleFunc("DELETE /api/decks/{deckID}", auth.Middleware(h.DeleteDeck))

	// Cards
	mux.HandleFunc("POST /api/decks/{deckID}/cards", auth.Middleware(h.AddCard))
	mux.HandleFunc("PUT /api/decks/{deckID}/cards/{index}", auth.Middleware(h.ReplaceCard))
	mux.HandleFunc("DELETE /api/decks/{deckID}/cards/{index}", auth.Middleware(h.DeleteCard))
	mux.HandleFunc("POST /api/decks/{deckID}/cards/save", auth.Middleware(h.SaveCardToDeck))

	// Study sessions
	mux.HandleFunc("POST /api/sessions", h.StartSession)
	mux.HandleFunc("GET /api/sessions/{sessionID}", h.GetSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/flip", h.FlipSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/next", h.NextCard)
	mux.HandleFunc("POST /api/sessions/{sessionID}/previous", h.PreviousCard)
	mux.HandleFunc("POST /api/sessions/{sessionID}/save", auth.Middleware(h.SaveSessionCard))
	mux.HandleFunc("DELETE /api/sessions/{sessionID}", h.EndSession)

	// Tutor
	mux.HandleFunc("POST /api/tutor/chat", h.TutorChat)
	mux.HandleFunc("POST /api/tutor/quiz", h.GenerateQuiz)
	mux.HandleFunc("POST /api/tutor/subjective-quiz", h.GenerateSubjectiveQuiz)
	mux.HandleFunc("POST /api/tutor/flashcards", h.GenerateFlashcards)
	mux.HandleFunc("POST /api/tutor/condense", h.CondenseNotes)
	mux.HandleFunc("POST /api/tutor/analyze", h.AnalyzeImage)

	// Syllabus notes
	mux.HandleFunc("GET /api/notes", h.GetSyllabus)
	mux.HandleFunc("GET /api/notes/{subject}/{semester}", h.GetChapters)
	mux.HandleFunc("GET /api/notes/{subject}/{semester}/{chapterID}", h.GetChapter)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Confirm-Token", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	log.Println("Listening on", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal(err)
	}
}
