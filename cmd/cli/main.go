package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"messages-api/internal/config"
	"messages-api/internal/domain"
	"messages-api/internal/service"
	"messages-api/internal/storage"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	repo, closeRepo, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	msgSvc := service.NewMessageService(repo, nil, logger)

	for {
		fmt.Printf("\n===== Mensajes (%s) =====\n", cfg.StorageBackend)
		fmt.Println("[1] Listar mensajes")
		fmt.Println("[2] Buscar por id")
		fmt.Println("[3] Nuevo mensaje")
		fmt.Println("[4] Ver vistas derivadas")
		fmt.Println("[5] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			messages, err := msgSvc.FindMessages(ctx)
			if err != nil {
				fmt.Printf("Error listando: %v\n", err)
				continue
			}
			printJSON(messages)
		case "2":
			fmt.Print("Id: ")
			id, _ := reader.ReadString('\n')
			messages, err := msgSvc.FindMessageByID(ctx, strings.TrimSpace(id))
			if err != nil {
				fmt.Printf("Error buscando: %v\n", err)
				continue
			}
			printJSON(messages)
		case "3":
			if err := createFlow(ctx, reader, msgSvc); err != nil {
				fmt.Printf("Error guardando: %v\n", err)
			}
		case "4":
			if err := viewsFlow(ctx, msgSvc); err != nil {
				fmt.Printf("Error leyendo mensajes: %v\n", err)
			}
		case "5":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func createFlow(ctx context.Context, reader *bufio.Reader, msgSvc *service.MessageService) error {
	fmt.Print("Texto: ")
	text, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("leer input: %w", err)
	}
	fmt.Print("Id (vacio para generar): ")
	id, _ := reader.ReadString('\n')

	msg := domain.Message{Text: strings.TrimRight(text, "\r\n")}
	if id = strings.TrimSpace(id); id != "" {
		msg.ID = &id
	}
	saved, err := msgSvc.Save(ctx, msg)
	if err != nil {
		return err
	}
	fmt.Printf("Guardado con id %s\n", saved.IDString())
	return nil
}

func viewsFlow(ctx context.Context, msgSvc *service.MessageService) error {
	messages, err := msgSvc.FindMessages(ctx)
	if err != nil {
		return err
	}

	section("firstAndLast")
	printResult(service.FirstAndLast(messages))
	section("firstMessageLongerThan10")
	printResult(service.FirstLongerThan(messages, service.LongMessageThreshold))
	section("firstMessageLongerThan10OrNull")
	printJSON(service.FirstLongerThanOrDefault(messages, service.LongMessageThreshold))
	section("filterMessagesLongerThan10")
	printJSON(service.FilterLongerThan(messages, service.LongMessageThreshold))
	section("sortByLastLetter")
	printResult(service.SortByLastLetter(messages))
	section("groups")
	printJSON(service.GroupByKeyword(messages))
	section("transformMessagesToListOfStrings")
	printJSON(service.ToStrings(messages))
	section("averageMessageLength")
	printResult(service.AverageLength(messages))
	section("findTheLongestMessage")
	printResult(service.Longest(messages))
	return nil
}

func section(name string) {
	fmt.Printf("---- %s ----\n", name)
}

func printResult(v any, err error) {
	if err != nil {
		fmt.Printf("(error: %v)\n", err)
		return
	}
	printJSON(v)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("(error: %v)\n", err)
		return
	}
	fmt.Println(string(out))
}
