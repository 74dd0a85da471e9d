package wind

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/nilsmagnus/grib/griblib"

	"github.com/a-bouts/angle-server/angle"
)

// Wind holds the 10 m U/V components of one GRIB file on a regular lat/lon grid.
type Wind struct {
	File string
	Lat0 float64
	Lon0 float64
	ΔLat float64
	ΔLon float64
	NLat uint32
	NLon uint32
	U    [][]float64
	V    [][]float64
}

var errNoWind = errors.New("no 10m wind")

func (w Wind) buildGrid(data []float64) [][]float64 {

	isContinuous := math.Floor(float64(w.NLon)*w.ΔLon) >= 360

	nLon := w.NLon
	if isContinuous {
		nLon++
	}

	grid := make([][]float64, w.NLat)

	p := 0
	for j := uint32(0); j < w.NLat; j++ {
		grid[j] = make([]float64, nLon)
		for i := uint32(0); i < w.NLon; i++ {
			grid[j][i] = data[p]
			p++
		}
		if isContinuous {
			grid[j][w.NLon] = grid[j][0]
		}
	}
	return grid
}

// Load reads the U/V wind at 10 m above ground from a GRIB2 file.
func Load(dir string, file string) (*Wind, error) {
	w := &Wind{File: file}

	gribfile, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	defer gribfile.Close()

	messages, err := griblib.ReadMessages(gribfile)
	if err != nil {
		return nil, fmt.Errorf("reading grib '%s': %w", file, err)
	}
	for _, message := range messages {
		product := message.Section4.ProductDefinitionTemplate
		if message.Section0.Discipline != 0 || product.ParameterCategory != 2 || product.FirstSurface.Type != 103 || product.FirstSurface.Value != 10 {
			continue
		}
		grid0, ok := message.Section3.Definition.(*griblib.Grid0)
		if !ok {
			continue
		}
		w.Lat0 = float64(grid0.La1) / 1e6
		w.Lon0 = float64(grid0.Lo1) / 1e6
		w.ΔLat = float64(grid0.Dj) / 1e6
		w.ΔLon = float64(grid0.Di) / 1e6
		w.NLat = grid0.Nj
		w.NLon = grid0.Ni
		if product.ParameterNumber == 2 {
			w.U = w.buildGrid(message.Section7.Data)
		} else if product.ParameterNumber == 3 {
			w.V = w.buildGrid(message.Section7.Data)
		}
	}
	if w.U == nil || w.V == nil {
		return nil, fmt.Errorf("%w in '%s'", errNoWind, file)
	}
	return w, nil
}

func floorMod(a float64, n float64) float64 {
	return a - n*math.Floor(a/n)
}

func bilinearInterpolate(x float64, y float64, g00 []float64, g10 []float64, g01 []float64, g11 []float64) (float64, float64) {

	rx := (1 - x)
	ry := (1 - y)

	a := rx * ry
	b := x * ry
	c := rx * y
	d := x * y

	u := g00[0]*a + g10[0]*b + g01[0]*c + g11[0]*d
	v := g00[1]*a + g10[1]*b + g01[1]*c + g11[1]*d

	return u, v
}

func (w *Wind) uv(lat float64, lon float64) (float64, float64) {

	i := math.Abs((lat - w.Lat0) / w.ΔLat)
	j := floorMod(lon-w.Lon0, 360.0) / w.ΔLon

	fi := uint32(i)
	fj := uint32(j)
	if fi+1 >= uint32(len(w.U)) {
		fi = uint32(len(w.U)) - 2
	}
	if fj+1 >= uint32(len(w.U[fi])) {
		fj = uint32(len(w.U[fi])) - 2
	}

	u00 := w.U[fi][fj]
	v00 := w.V[fi][fj]

	u01 := w.U[fi+1][fj]
	v01 := w.V[fi+1][fj]

	u10 := w.U[fi][fj+1]
	v10 := w.V[fi][fj+1]

	u11 := w.U[fi+1][fj+1]
	v11 := w.V[fi+1][fj+1]

	return bilinearInterpolate(j-float64(fj), i-float64(fi), []float64{u00, v00}, []float64{u10, v10}, []float64{u01, v01}, []float64{u11, v11})
}

// Interpolate returns the direction the wind blows from, in radians with east
// at 0, and its speed in m/s.
func (w *Wind) Interpolate(lat float64, lon float64) (float64, float64) {
	u, v := w.uv(lat, lon)

	toward := angle.AngleTwoPointsXY(0, 0, u, v)
	speed := angle.DistanceTwoPointsXY(0, 0, u, v)

	return angle.Normalize(toward + angle.Left), speed
}
