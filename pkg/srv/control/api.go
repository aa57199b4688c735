/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package control serves the host-framework boundary of the sensor over a
// RESTful API: format negotiation, control get/set, stream start/stop,
// crop queries and the register shadow.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"jinr.ru/greenlab/go-imx477/pkg/config"
	"jinr.ru/greenlab/go-imx477/pkg/log"
	"jinr.ru/greenlab/go-imx477/pkg/sensor"
	"jinr.ru/greenlab/go-imx477/pkg/state"
)

// FormatRequest is the body of a format-set call.
type FormatRequest struct {
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	Code      uint32 `json:"code"`
	Tentative bool   `json:"tentative"`
}

// CtrlValue is the body of a control-set call.
type CtrlValue struct {
	Value int64 `json:"value"`
}

// CtrlState is a control-get response.
type CtrlState struct {
	Range sensor.ControlRange `json:"range"`
	Value int64               `json:"value"`
}

// RegHex carries a register address/value pair, both hexadecimal strings.
type RegHex struct {
	Addr  string `json:"addr"`
	Value string `json:"value"`
}

// Status is the sensor status summary.
type Status struct {
	Streaming bool          `json:"streaming"`
	Format    sensor.Format `json:"format"`
	Mode      sensor.Mode   `json:"mode"`
}

type ApiServer struct {
	context.Context
	*config.Config
	Router *mux.Router
	sensor *sensor.Sensor
	shadow *state.ShadowStore
}

func NewApiServer(ctx context.Context, cfg *config.Config, s *sensor.Sensor, shadow *state.ShadowStore) *ApiServer {
	return &ApiServer{
		Context: ctx,
		Config:  cfg,
		sensor:  s,
		shadow:  shadow,
	}
}

func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.Config.Api.Address, s.Config.Api.Port)
	s.configureRouter()
	httpServer := &http.Server{
		Handler: s.Router,
		Addr:    fmt.Sprintf("%s:%d", s.Config.Api.Address, s.Config.Api.Port),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	subRouter.HandleFunc("/status", s.handleStatus()).Methods("GET")
	subRouter.HandleFunc("/format/{pad:[01]}", s.handleFormatGet()).Methods("GET")
	subRouter.HandleFunc("/format/{pad:[01]}", s.handleFormatSet()).Methods("POST")
	subRouter.HandleFunc("/formats/{pad:[01]}", s.handleFormats()).Methods("GET")
	subRouter.HandleFunc("/framesizes/{code}", s.handleFrameSizes()).Methods("GET")
	subRouter.HandleFunc("/ctrl/{name}", s.handleCtrlGet()).Methods("GET")
	subRouter.HandleFunc("/ctrl/{name}", s.handleCtrlSet()).Methods("POST")
	subRouter.HandleFunc("/stream/{action:start|stop}", s.handleStream()).Methods("POST")
	subRouter.HandleFunc("/crop/{target}", s.handleCrop()).Methods("GET")
	subRouter.HandleFunc("/reg", s.handleRegAll()).Methods("GET")
	subRouter.HandleFunc("/reg/{addr:0x[0-9a-f]{1,4}}", s.handleRegGet()).Methods("GET")
	subRouter.HandleFunc("/reg/{addr:0x[0-9a-f]{1,4}}", s.handleRegSet()).Methods("POST")
}

// statusFromError maps the sensor error taxonomy onto HTTP codes. Client
// mistakes are 4xx, bus failures surface as gateway errors.
func statusFromError(err error) int {
	var (
		busErr     sensor.ErrBusIO
		listErr    sensor.ErrRegListWrite
		fmtErr     sensor.ErrUnsupportedFormat
		resErr     sensor.ErrUnsupportedResolution
		ctrlErr    sensor.ErrInvalidControlValue
		unknownErr sensor.ErrUnknownControl
		busyErr    sensor.ErrStreamingBusy
		padErr     sensor.ErrInvalidPad
	)
	switch {
	case errors.As(err, &busErr), errors.As(err, &listErr):
		return http.StatusBadGateway
	case errors.As(err, &fmtErr), errors.As(err, &resErr),
		errors.As(err, &ctrlErr), errors.As(err, &padErr):
		return http.StatusBadRequest
	case errors.As(err, &unknownErr):
		return http.StatusNotFound
	case errors.As(err, &busyErr):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode API response: %v", err)
	}
}

func (s *ApiServer) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := s.sensor.GetFormat(sensor.PadImage, sensor.FormatActive)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, Status{
			Streaming: s.sensor.Streaming(),
			Format:    f,
			Mode:      s.sensor.ActiveMode(),
		})
	}
}

func parsePad(r *http.Request) sensor.Pad {
	pad, _ := strconv.Atoi(mux.Vars(r)["pad"])
	return sensor.Pad(pad)
}

func whence(tentative bool) sensor.FormatWhence {
	if tentative {
		return sensor.FormatTentative
	}
	return sensor.FormatActive
}

func (s *ApiServer) handleFormatGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := s.sensor.GetFormat(parsePad(r),
			whence(r.URL.Query().Get("tentative") == "true"))
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, f)
	}
}

func (s *ApiServer) handleFormatSet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &FormatRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f, err := s.sensor.SetFormat(parsePad(r), whence(req.Tentative), sensor.Format{
			Width:  req.Width,
			Height: req.Height,
			Code:   sensor.FormatCode(req.Code),
		})
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, f)
	}
}

func (s *ApiServer) handleFormats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pad := parsePad(r)
		var codes []uint32
		for i := 0; ; i++ {
			code, ok := s.sensor.EnumFormats(pad, i)
			if !ok {
				break
			}
			codes = append(codes, uint32(code))
		}
		writeJSON(w, codes)
	}
}

func (s *ApiServer) handleFrameSizes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parsed, err := strconv.ParseUint(mux.Vars(r)["code"], 0, 32)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var sizes []sensor.FrameSize
		for i := 0; ; i++ {
			fs, ok := s.sensor.EnumFrameSizes(sensor.FormatCode(parsed), i)
			if !ok {
				break
			}
			sizes = append(sizes, fs)
		}
		writeJSON(w, sizes)
	}
}

func (s *ApiServer) handleCtrlGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		id, ok := sensor.CtrlByName(name)
		if !ok {
			http.Error(w, fmt.Sprintf("Control not found: %s", name), http.StatusNotFound)
			return
		}
		rng, err := s.sensor.ControlRange(id)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		val, err := s.sensor.Control(id)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, CtrlState{Range: rng, Value: val})
	}
}

func (s *ApiServer) handleCtrlSet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		id, ok := sensor.CtrlByName(name)
		if !ok {
			http.Error(w, fmt.Sprintf("Control not found: %s", name), http.StatusNotFound)
			return
		}
		req := &CtrlValue{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.sensor.SetControl(id, req.Value); err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, req)
	}
}

func (s *ApiServer) handleStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enable := mux.Vars(r)["action"] == "start"
		if err := s.sensor.SetStreaming(enable); err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, Status{Streaming: s.sensor.Streaming()})
	}
}

var cropTargets = map[string]sensor.CropTarget{
	"current": sensor.CropCurrent,
	"default": sensor.CropDefault,
	"bounds":  sensor.CropBounds,
	"native":  sensor.CropNative,
}

func (s *ApiServer) handleCrop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, ok := cropTargets[mux.Vars(r)["target"]]
		if !ok {
			http.Error(w, fmt.Sprintf("Unknown crop target: %s", mux.Vars(r)["target"]),
				http.StatusBadRequest)
			return
		}
		rect, err := s.sensor.Crop(target)
		if err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		writeJSON(w, rect)
	}
}

func (s *ApiServer) handleRegAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regs, err := s.shadow.GetRegAll()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := make([]RegHex, 0, len(regs))
		for addr, value := range regs {
			out = append(out, RegHex{
				Addr:  fmt.Sprintf("0x%04x", addr),
				Value: fmt.Sprintf("0x%x", value),
			})
		}
		writeJSON(w, out)
	}
}

// handleRegGet reads a register: from the shadow store by default, from the
// hardware when live=true. Live reads need the sensor powered, so they are
// only allowed while streaming.
func (s *ApiServer) handleRegGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parsed, err := strconv.ParseUint(mux.Vars(r)["addr"], 0, 16)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		addr := uint16(parsed)

		var value uint32
		if r.URL.Query().Get("live") == "true" {
			value, err = s.sensor.RegRead(addr, sensor.RegValue8Bit)
			if err != nil {
				http.Error(w, err.Error(), statusFromError(err))
				return
			}
		} else {
			value, err = s.shadow.GetReg(addr)
			if err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
		}
		writeJSON(w, RegHex{
			Addr:  fmt.Sprintf("0x%04x", addr),
			Value: fmt.Sprintf("0x%x", value),
		})
	}
}

func (s *ApiServer) handleRegSet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parsed, err := strconv.ParseUint(mux.Vars(r)["addr"], 0, 16)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req := &RegHex{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		value, err := strconv.ParseUint(req.Value, 0, 32)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.sensor.RegWrite(uint16(parsed), sensor.RegValue8Bit, uint32(value)); err != nil {
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		req.Addr = fmt.Sprintf("0x%04x", uint16(parsed))
		writeJSON(w, req)
	}
}
