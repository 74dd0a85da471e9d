package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/angle-server/angle"
	"github.com/a-bouts/angle-server/api/model"
	"github.com/a-bouts/angle-server/wind"
)

type server struct {
	cpuprofile bool
	winds      *wind.Winds

	// one cpu profile at a time, profile.Start exits the process otherwise
	profiling sync.Mutex
}

func InitServer(cpuprofile bool, winds *wind.Winds) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := &server{
		cpuprofile: cpuprofile,
		winds:      winds,
	}

	api := router.PathPrefix("/").Subrouter()
	api.HandleFunc("/angle/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/angle/api/v1").Subrouter()
	apiV1.HandleFunc("/directions", s.directions).Methods(http.MethodGet)
	apiV1.HandleFunc("/degrees/{radians}", s.degrees).Methods(http.MethodGet)
	apiV1.HandleFunc("/radians/{degrees}", s.radians).Methods(http.MethodGet)
	apiV1.HandleFunc("/normalize/{angle}", s.normalize).Methods(http.MethodGet)
	apiV1.HandleFunc("/difference/{a}/{b}", s.difference).Methods(http.MethodGet)
	apiV1.HandleFunc("/sign/{target}/{source}", s.sign).Methods(http.MethodGet)
	apiV1.HandleFunc("/shortest/{start}/{to}", s.shortest).Methods(http.MethodGet)
	apiV1.HandleFunc("/between/{target}/{angle1}/{angle2}", s.between).Methods(http.MethodGet)
	apiV1.HandleFunc("/closest/{angle}", s.closest).Methods(http.MethodGet)
	apiV1.HandleFunc("/explain/{angle}", s.explain).Methods(http.MethodGet)
	apiV1.HandleFunc("/equals/{a1}/{a2}", s.equals).Methods(http.MethodGet)
	apiV1.HandleFunc("/points", s.points).Methods(http.MethodPost)
	apiV1.HandleFunc("/points/{x1}/{y1}/{x2}/{y2}", s.pointsXY).Methods(http.MethodGet)
	apiV1.HandleFunc("/winds", s.windFiles).Methods(http.MethodGet)
	apiV1.HandleFunc("/wind/{file}/{lat}/{lon}", s.wind).Methods(http.MethodGet)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

// floatVars parses the named path variables, answering 400 on the first one
// that is not a number.
func floatVars(w http.ResponseWriter, r *http.Request, names ...string) ([]float64, bool) {
	vars := mux.Vars(r)
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := strconv.ParseFloat(vars[name], 64)
		if err != nil {
			log.WithError(err).Debugf("Bad parameter '%s'", name)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a number", name))
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Error{Error: message})
}

func encode(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Error encoding response")
	}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// writeValue answers 422 for NaN and infinite results, JSON cannot carry them.
func writeValue(w http.ResponseWriter, v float64) {
	if !finite(v) {
		writeError(w, http.StatusUnprocessableEntity, "not a number")
		return
	}
	encode(w, model.Value{Value: v})
}

func (s *server) directions(w http.ResponseWriter, r *http.Request) {
	encode(w, angle.Directions())
}

func (s *server) degrees(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "radians"); ok {
		writeValue(w, angle.ToDegrees(v[0]))
	}
}

func (s *server) radians(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "degrees"); ok {
		writeValue(w, angle.ToRadians(v[0]))
	}
}

func (s *server) normalize(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "angle"); ok {
		writeValue(w, angle.Normalize(v[0]))
	}
}

func (s *server) difference(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "a", "b"); ok {
		writeValue(w, angle.Difference(v[0], v[1]))
	}
}

func (s *server) sign(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "target", "source"); ok {
		encode(w, model.Sign{Value: angle.DifferenceSign(v[0], v[1])})
	}
}

func (s *server) shortest(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "start", "to"); ok {
		writeValue(w, angle.ShortestAngle(v[0], v[1]))
	}
}

func (s *server) between(w http.ResponseWriter, r *http.Request) {
	if v, ok := floatVars(w, r, "target", "angle1", "angle2"); ok {
		encode(w, model.Bool{Value: angle.IsBetween(v[0], v[1], v[2])})
	}
}

func diagonal(r *http.Request) bool {
	d, _ := strconv.ParseBool(r.URL.Query().Get("diagonal"))
	return d
}

func (s *server) closest(w http.ResponseWriter, r *http.Request) {
	v, ok := floatVars(w, r, "angle")
	if !ok {
		return
	}
	if diagonal(r) {
		writeValue(w, angle.ClosestAngle2(v[0]))
		return
	}
	writeValue(w, angle.ClosestAngle(v[0]))
}

func (s *server) explain(w http.ResponseWriter, r *http.Request) {
	v, ok := floatVars(w, r, "angle")
	if !ok {
		return
	}
	if diagonal(r) {
		encode(w, model.Name{Value: angle.Explain2(v[0])})
		return
	}
	encode(w, model.Name{Value: angle.Explain(v[0])})
}

func (s *server) equals(w http.ResponseWriter, r *http.Request) {
	v, ok := floatVars(w, r, "a1", "a2")
	if !ok {
		return
	}

	q := r.URL.Query().Get("wiggle")
	if q == "" {
		encode(w, model.Bool{Value: angle.Equals(v[0], v[1])})
		return
	}
	wiggle, err := strconv.ParseFloat(q, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "wiggle is not a number")
		return
	}
	encode(w, model.Bool{Value: angle.EqualsWithin(v[0], v[1], wiggle)})
}

func writePoints(w http.ResponseWriter, res model.Points) {
	if !finite(res.Angle, res.Distance, res.DistanceSquared) {
		writeError(w, http.StatusUnprocessableEntity, "not a number")
		return
	}
	encode(w, res)
}

func (s *server) points(w http.ResponseWriter, req *http.Request) {
	var p model.PointsRequest
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		log.WithError(err).Debug("Bad points request")
		writeError(w, http.StatusBadRequest, "bad points request")
		return
	}

	a := angle.AngleTwoPoints(p.From, p.To)
	writePoints(w, model.Points{
		Angle:           a,
		Distance:        angle.DistanceTwoPoints(p.From, p.To),
		DistanceSquared: angle.DistanceTwoPointsSquared(p.From, p.To),
		Direction:       angle.Explain2(a),
	})
}

func (s *server) pointsXY(w http.ResponseWriter, r *http.Request) {
	v, ok := floatVars(w, r, "x1", "y1", "x2", "y2")
	if !ok {
		return
	}

	a := angle.AngleTwoPointsXY(v[0], v[1], v[2], v[3])
	writePoints(w, model.Points{
		Angle:           a,
		Distance:        angle.DistanceTwoPointsXY(v[0], v[1], v[2], v[3]),
		DistanceSquared: angle.DistanceTwoPointsSquaredXY(v[0], v[1], v[2], v[3]),
		Direction:       angle.Explain2(a),
	})
}

func (s *server) windFiles(w http.ResponseWriter, r *http.Request) {
	encode(w, s.winds.Files())
}

func (s *server) wind(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		s.profiling.Lock()
		defer s.profiling.Unlock()
		defer profile.Start(profile.Quiet).Stop()
	}

	fields := log.Fields{
		"action": "wind",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	file := mux.Vars(req)["file"]
	v, ok := floatVars(w, req, "lat", "lon")
	if !ok {
		return
	}
	lat, lon := v[0], v[1]

	wi, found := s.winds.Find(file)
	if !found {
		requestLogger.Infof("Wind file '%s' not found", file)
		writeError(w, http.StatusNotFound, fmt.Sprintf("no wind file '%s'", file))
		return
	}

	direction, speed := wi.Interpolate(lat, lon)
	res := model.Wind{
		File:      file,
		Direction: direction,
		Compass:   wind.Compass(direction),
		Name:      angle.Explain2(direction),
		Speed:     speed * wind.MsToKts,
	}

	if q := req.URL.Query().Get("heading"); q != "" {
		heading, err := strconv.ParseFloat(q, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "heading is not a number")
			return
		}
		twa := wind.Twa(heading, direction)
		res.Twa = &twa
	}

	values := []float64{res.Direction, res.Speed}
	if res.Twa != nil {
		values = append(values, *res.Twa)
	}
	if !finite(values...) {
		writeError(w, http.StatusUnprocessableEntity, "not a number")
		return
	}

	requestLogger.Infof("Wind %s (%f,%f) : %s %.1f° %.1f kt", file, lat, lon, res.Name, res.Compass, res.Speed)

	encode(w, res)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
