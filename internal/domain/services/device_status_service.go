package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"shopdesk-http-service/internal/domain/models"
	"shopdesk-http-service/internal/infrastructure/config"
	"shopdesk-http-service/pkg/logger"
)

// Topic the devices publish their status reports on. The single wildcard
// level is the device serial number.
const TopicDeviceStatus = "devices/+/status"

// StatusReport is the payload devices publish on their status topic
type StatusReport struct {
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"` // online, offline, fault
	Timestamp    int64  `json:"timestamp"`
}

// InterfaceDeviceStatusService defines the MQTT status feed interface
type InterfaceDeviceStatusService interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	PublishSystemMessage(messageType string, message map[string]interface{}) error
}

// DeviceStatusService subscribes to the device status feed and applies every
// report to the device table through the device service.
type DeviceStatusService struct {
	Config         *config.Config
	Devices        InterfaceDeviceService
	Client         mqtt.Client
	connected      bool
	connectedMutex sync.RWMutex
	publishMutex   sync.Mutex
}

// NewDeviceStatusService creates a new device status feed service
func NewDeviceStatusService(cfg *config.Config, devices InterfaceDeviceService) InterfaceDeviceStatusService {
	service := &DeviceStatusService{
		Config:  cfg,
		Devices: devices,
	}
	service.setupClient()
	return service
}

// setupClient configures the MQTT client with auto-reconnect and resubscribe
func (s *DeviceStatusService) setupClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// Unique client id so multiple instances of the service never clash
	opts.SetClientID(fmt.Sprintf("%s-%s", s.Config.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)

	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warning("MQTT connection lost: %v", err)
		s.connectedMutex.Lock()
		s.connected = false
		s.connectedMutex.Unlock()
	})

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("Connected to MQTT broker %s", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.connected = true
		s.connectedMutex.Unlock()

		// Resubscribe on every (re)connect
		if token := client.Subscribe(TopicDeviceStatus, 1, s.handleStatusReport); token.Wait() && token.Error() != nil {
			logger.Error("Failed to subscribe to %s: %v", TopicDeviceStatus, token.Error())
		}
	})

	s.Client = mqtt.NewClient(opts)
}

// Connect connects to the MQTT broker with retries
func (s *DeviceStatusService) Connect() error {
	if s.IsConnected() {
		return nil
	}

	maxRetries := 5
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		token := s.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			return nil
		}
		lastErr = token.Error()
		logger.Warning("MQTT connect attempt %d/%d failed: %v", i+1, maxRetries, lastErr)
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	return fmt.Errorf("failed to connect to MQTT broker after %d attempts: %w", maxRetries, lastErr)
}

// Disconnect closes the MQTT connection
func (s *DeviceStatusService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.connectedMutex.Lock()
	s.connected = false
	s.connectedMutex.Unlock()
}

// IsConnected reports whether the broker connection is up
func (s *DeviceStatusService) IsConnected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.connected && s.Client.IsConnected()
}

// handleStatusReport applies one status report. The serial number from the
// payload wins over the topic segment when both are present.
func (s *DeviceStatusService) handleStatusReport(client mqtt.Client, msg mqtt.Message) {
	var report StatusReport
	if err := json.Unmarshal(msg.Payload(), &report); err != nil {
		logger.Warning("Malformed status report on %s: %v", msg.Topic(), err)
		return
	}

	if report.SerialNumber == "" {
		report.SerialNumber = serialFromTopic(msg.Topic())
	}
	if report.SerialNumber == "" {
		logger.Warning("Status report without serial number on %s", msg.Topic())
		return
	}

	status := models.DeviceStatus(report.Status)
	switch status {
	case models.DeviceStatusOnline, models.DeviceStatusOffline, models.DeviceStatusFault:
	default:
		logger.Warning("Unknown device status %q from %s", report.Status, report.SerialNumber)
		return
	}

	if err := s.Devices.UpdateDeviceStatus(report.SerialNumber, status); err != nil {
		logger.Warning("Failed to apply status %s for device %s: %v", status, report.SerialNumber, err)
		return
	}
	logger.Info("Device %s reported %s", report.SerialNumber, status)
}

// PublishSystemMessage publishes a console notice on the system topic
func (s *DeviceStatusService) PublishSystemMessage(messageType string, message map[string]interface{}) error {
	s.publishMutex.Lock()
	defer s.publishMutex.Unlock()

	if !s.IsConnected() {
		return fmt.Errorf("not connected to MQTT broker")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":      messageType,
		"timestamp": time.Now().UnixMilli(),
		"payload":   message,
	})
	if err != nil {
		return err
	}

	token := s.Client.Publish("console/system", 1, false, payload)
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// serialFromTopic extracts the serial number segment of devices/<sn>/status
func serialFromTopic(topic string) string {
	const prefix = "devices/"
	const suffix = "/status"
	if len(topic) <= len(prefix)+len(suffix) {
		return ""
	}
	if topic[:len(prefix)] != prefix || topic[len(topic)-len(suffix):] != suffix {
		return ""
	}
	return topic[len(prefix) : len(topic)-len(suffix)]
}
