package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}
}

// CaptureProfile starts a background capture unless one is running or on cooldown
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".trace", trace.Start, trace.Stop); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()
	}()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) capture(name string, start func(w io.Writer) error, stop func()) error {
	path := filepath.Join(p.profilesDir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("failed to start capture: %w", err)
	}
	time.Sleep(p.captureDuration)
	stop()

	log.Printf("Saved %s", path)
	return nil
}
