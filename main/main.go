package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/variant"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	sig := variant.Types3[int, string, float64]()
	v := variant.Empty(sig)
	for i := 0; i < 10000; i++ {
		variant.Assign(v, i)
		variant.Assign(v, "payload")
		variant.Assign(v, float64(i))
		w := v.Clone()
		if !w.Equal(v) {
			log.Fatal("clone diverged")
		}
		v.MoveFrom(w)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
