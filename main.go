/* main.go
 * The "main" method for running the courtside service: the Discord bot for
 * score reporting, the DUPR submission scheduler and the webhook server.
 * Usage: go run main.go -eventId="<id>" -eventType="<type>" -mode="<mode>" -organizers="<id,id>"
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"

	api "courtside/api/api"
	"courtside/api/external"
	"courtside/api/rating"
	"courtside/api/shared"
	"courtside/bot"
	"courtside/web"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// Flags
	eventIDPtr := flag.String("eventId", "", "Event this deployment serves, e.g. spring-league-2026")
	eventTypePtr := flag.String("eventType", "league", "Event type: tournament, league, club or meetup")
	modePtr := flag.String("mode", "none", "DUPR regulation mode: none, optional or required")
	organizersPtr := flag.String("organizers", "", "Comma separated user ids of the event's organizers")
	addrPtr := flag.String("addr", ":8080", "Listen address for the webhook server")

	flag.Parse()

	mode, err := shared.ParseRegulationMode(*modePtr)
	if err != nil {
		log.Fatal(err)
	}

	apiPtr, err := api.NewAPI("courtside", os.Getenv("MONGO_URI"), *eventIDPtr, *eventTypePtr, mode, splitIDList(*organizersPtr))
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// DUPR submissions only run for regulated events
	if mode != shared.RegulationNone {
		duprClient, err := external.NewDuprClient(os.Getenv("DUPR_API_URL"), os.Getenv("DUPR_API_KEY"))
		if err != nil {
			log.Fatalf("failed to initialize DUPR client: %v", err)
		}
		submitter, err := rating.NewSubmitter(apiPtr.Store, duprClient, 2)
		if err != nil {
			log.Fatalf("failed to initialize submitter: %v", err)
		}
		startSubmissionScheduler(submitter)
	}

	// Webhook server for DUPR callbacks
	go func() {
		if err := web.Start(web.Config{Addr: *addrPtr, API: apiPtr}); err != nil {
			log.Println("webhook server stopped:", err)
		}
	}()

	// Init bot and block until interrupted
	courtsideBot, err := bot.NewBot(os.Getenv("DISCORD_TOKEN"), apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := courtsideBot.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}

// startSubmissionScheduler runs the DUPR submitter on a fixed interval
func startSubmissionScheduler(submitter *rating.Submitter) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("failed to initialize scheduler: %v", err)
	}
	sched.Start()

	// Every 5 minutes: push pending official results to DUPR
	_, err = sched.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			submitted, err := submitter.SubmitPending(ctx)
			if err != nil {
				log.Printf("[Scheduler] DUPR submission pass failed: %v", err)
				return
			}
			if submitted > 0 {
				log.Printf("[Scheduler] Submitted %d match(es) to DUPR", submitted)
			}
		}),
	)
	if err != nil {
		log.Fatalf("failed to schedule DUPR submissions: %v", err)
	}
}
