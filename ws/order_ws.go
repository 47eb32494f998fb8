package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/Dibyashritarout/ByteBites-main/entity"
	"github.com/Dibyashritarout/ByteBites-main/services"
	"github.com/Dibyashritarout/ByteBites-main/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub กระจายการเปลี่ยน status ของออเดอร์ให้ client ที่ subscribe อยู่
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	service    *services.OrderService
}

// Subscription = client หนึ่งตัวเกาะออเดอร์หนึ่งใบ
type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

type StatusUpdate struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
}

func NewOrderHub(service *services.OrderService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		service:    service,
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[upd.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ต่อเป็น OnStatusChange hook ของ OrderService
func (h *OrderHub) BroadcastStatus(orderID uint, status entity.OrderStatus) {
	h.broadcast <- StatusUpdate{OrderID: orderID, Status: status}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	// subscribe ได้เฉพาะออเดอร์ของตัวเอง
	if _, err := h.service.DetailForUser(userID, uint(orderID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: uint(orderID)}
	h.register <- sub

	// client ไม่ต้องส่งอะไรมา — อ่านไว้แค่รอ close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
