package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const orderStatusQueue = "order.status.updated"

// PublishOrderStatusUpdated: olayı RabbitMQ'ya yayınlar. Yayın best-effort:
// hata loglanır ve döndürülür, çağıran taraf isteği kesintiye uğratmadan
// görmezden gelebilir. url boşsa broker yapılandırılmamış demektir, sessizce
// atlanır.
func PublishOrderStatusUpdated(ctx context.Context, url string, event OrderStatusUpdatedEvent) error {
	if url == "" {
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: bağlantı kurulamadı: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: kanal açılamadı: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Kuyruk idempotent şekilde tanımlanır; durable, broker yeniden
	// başlasa da mesajlar kalır.
	if _, err := ch.QueueDeclare(orderStatusQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: kuyruk tanımlanamadı: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: olay serileştirilemedi: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", orderStatusQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: yayın başarısız: %v", err)
		return err
	}

	return nil
}
