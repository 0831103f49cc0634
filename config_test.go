package astrokit

import (
	"sync"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	conf := astroConfig()
	if conf.SectorBaseSize != 1e12 {
		t.Fatalf("default sector base size %g != 1e12", conf.SectorBaseSize)
	}
	if conf.HubbleConstant != 70 {
		t.Fatalf("default Hubble constant %f != 70", conf.HubbleConstant)
	}
	// Loading is cached.
	if astroConfig() != conf {
		t.Fatal("config load is not cached")
	}
}

func TestConfigConcurrentFirstLoad(t *testing.T) {
	// Every racing first caller must observe a fully loaded config, never a
	// zero or partially applied one.
	cfgOnce = sync.Once{}
	got := make([]_astroconfig, 16)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = astroConfig()
		}(i)
	}
	wg.Wait()
	for i, c := range got {
		if c.SectorBaseSize == 0 || c.HubbleConstant == 0 {
			t.Fatalf("goroutine %d observed incomplete config %+v", i, c)
		}
		if c != got[0] {
			t.Fatalf("goroutine %d observed %+v, others %+v", i, c, got[0])
		}
	}
}
