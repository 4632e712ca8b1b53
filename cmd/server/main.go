package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Mshel/sshnake/internal/game"
	"github.com/Mshel/sshnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	defaultHost    = "0.0.0.0"
	defaultPort    = "6996"
	defaultKeyPath = ".ssh/id_ed25519"

	maxConnectionsPerIP = 2
)

var (
	ipCounter = make(map[string]int)
	ipMutex   sync.Mutex

	gameConfig game.Config
)

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

// acquireIP counts a new session for ip unless the limit is reached.
func acquireIP(ip string) (int, bool) {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	if ipCounter[ip] >= maxConnectionsPerIP {
		return ipCounter[ip], false
	}
	ipCounter[ip]++
	return ipCounter[ip], true
}

func releaseIP(ip string) int {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	ipCounter[ip]--
	if ipCounter[ip] <= 0 {
		delete(ipCounter, ip)
		return 0
	}
	return ipCounter[ip]
}

func connectionLimiterMiddleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)

		count, ok := acquireIP(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "current_count", count, "limit", maxConnectionsPerIP)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", count, maxConnectionsPerIP)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", maxConnectionsPerIP)
		next(s)
		log.Info("Connection closed", "ip", ip, "count_after", releaseIP(ip))
	}
}

func main() {
	_ = godotenv.Load()

	log.SetLevel(log.InfoLevel)
	if level, err := log.ParseLevel(os.Getenv("SNAKE_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	var err error
	gameConfig, err = game.ConfigFromEnv()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	host := getEnv("SNAKE_HOST", defaultHost)
	port := getEnv("SNAKE_PORT", defaultPort)

	sshServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithHostKeyPath(getEnv("SNAKE_PRIVATE_KEY_PATH", defaultKeyPath)),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			activeterm.Middleware(),
			connectionLimiterMiddleware,
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Fatal("Failed to create ssh server", "error", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", host, "port", port,
		"board", fmt.Sprintf("%dx%d", gameConfig.Width, gameConfig.Height))
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

// viewHandler gives every session its own game.
func viewHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()
	sessionID := uuid.NewString()

	controllerModel, err := ui.NewControllerModel(gameConfig, pty.Window.Width, pty.Window.Height)
	if err != nil {
		log.Error("Failed to create game", "session", sessionID, "error", err)
		wish.Fatalln(sshSession, "could not start a game")
		return nil, nil
	}

	log.Info("Game session started", "session", sessionID, "user", sshSession.User(), "ip", getIP(sshSession),
		"term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

	return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
}
