package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"waiterboard/config"
	httpapi "waiterboard/internal/api/http"
	"waiterboard/internal/backend"
	"waiterboard/internal/channel"
	"waiterboard/internal/domain"
	"waiterboard/internal/reconcile"
	"waiterboard/internal/service"
	"waiterboard/internal/storage"
)

func main() {
	staffID := config.Getenv("STAFF_ID", "")
	if staffID == "" {
		log.Fatal("STAFF_ID is required")
	}
	backendURL := config.Getenv("BACKEND_URL", "http://localhost:8000")
	payPageURL := config.Getenv("PAY_PAGE_URL", backendURL)
	port := config.Getenv("PORT", "8084")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	activityWriter := config.NewKafkaWriter("waiter-activity")
	defer activityWriter.Close()

	eventReader := config.NewKafkaReader("order-events", "waiter-board-"+staffID)

	orders := backend.NewClient(backendURL, &http.Client{Timeout: 10 * time.Second})
	set := reconcile.NewOrderSet()
	journal := storage.NewPostgresJournal(db)
	markers := storage.NewRedisMarkers(rdb, 7*24*time.Hour)
	publisher := storage.NewKafkaPublisher(activityWriter)
	paycode := service.DefaultPayCodeGenerator{BaseURL: payPageURL}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var board *service.BoardService
	feed := channel.NewFeed(eventReader,
		func(event domain.OrderEvent) { board.ApplyEvent(event) },
		func() {
			if err := board.Refresh(context.Background()); err != nil {
				log.Printf("Resync after reconnect failed: %v", err)
			}
		})
	board = service.NewBoardService(orders, set, feed, journal, markers, publisher, paycode, staffID)

	if err := board.Refresh(ctx); err != nil {
		log.Printf("Warning: initial order fetch failed: %v", err)
	}

	go func() {
		feed.Start(ctx)
		feed.Close()
	}()

	handler := httpapi.NewHandler(board)
	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}
