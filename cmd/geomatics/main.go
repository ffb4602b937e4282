// Command geomatics streams the tagged features of an OSM PBF extract to
// stdout, one per line, decorated with their geometric measures.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/paulmach/orb/geojson"
	"github.com/qedus/osmpbf"

	geomatics "github.com/burakucncu/programming-in-geomatics"
	"github.com/burakucncu/programming-in-geomatics/osm"
	"github.com/burakucncu/programming-in-geomatics/store"
)

type settings struct {
	pbfPath     string
	leveldbPath string
	format      string
	conditions  map[string][]string
}

func getSettings() settings {
	leveldbPath := flag.String("leveldb", "/tmp", "path to leveldb directory")
	tagList := flag.String("tags", "", "comma-separated list of tags to match, group AND conditions with a +")
	format := flag.String("format", "json", "output format: json or wkt")

	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		log.Fatal("invalid args, you must specify a PBF file")
	}
	if len(*tagList) < 1 {
		log.Fatal("nothing to do, you must specify tags to match against")
	}
	if *format != "json" && *format != "wkt" {
		log.Fatal("invalid format, expected json or wkt")
	}

	return settings{
		pbfPath:     args[0],
		leveldbPath: *leveldbPath,
		format:      *format,
		conditions:  osm.ParseConditions(*tagList),
	}
}

func main() {
	config := getSettings()

	file, err := os.Open(config.pbfPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	// use several goroutines for faster decoding
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(config.leveldbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	loader := osm.NewLoader(db, config.conditions)
	if err := loader.Run(decoder, func(f *geojson.Feature) {
		emit(f, config.format)
	}); err != nil {
		log.Fatal(err)
	}
}

func emit(f *geojson.Feature, format string) {
	if format == "wkt" {
		fmt.Println(geomatics.MarshalWKT(f.Geometry))
		return
	}

	centroid := geomatics.Centroid(f.Geometry)
	f.Properties["centroid"] = []float64{centroid[0], centroid[1]}
	f.Properties["area"] = geomatics.Area(f.Geometry)
	f.Properties["length"] = geomatics.Length(f.Geometry)

	data, err := f.MarshalJSON()
	if err != nil {
		log.Println("[warn] marshal failed for feature:", f.ID)
		return
	}
	fmt.Println(string(data))
}
