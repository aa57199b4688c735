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

package command

import (
	"errors"
	"fmt"

	"github.com/imroc/req"

	"jinr.ru/greenlab/go-imx477/pkg/config"
	"jinr.ru/greenlab/go-imx477/pkg/srv/control"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.Api.Address, cfg.Api.Port),
	}
}

// Status sends request to get the sensor status summary
func (c *ApiClient) Status() (*control.Status, error) {
	r, err := req.Get(fmt.Sprintf("%s/status", c.ApiPrefix))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	status := &control.Status{}
	if err = r.ToJSON(status); err != nil {
		return nil, err
	}
	return status, nil
}

// FormatGet sends request to get the format on a pad
func (c *ApiClient) FormatGet(pad int, tentative bool) (*control.FormatRequest, error) {
	url := fmt.Sprintf("%s/format/%d", c.ApiPrefix, pad)
	if tentative {
		url += "?tentative=true"
	}
	r, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	f := &control.FormatRequest{}
	if err = r.ToJSON(f); err != nil {
		return nil, err
	}
	return f, nil
}

// FormatSet sends request to set the format on a pad and returns the
// resolved format
func (c *ApiClient) FormatSet(pad int, f *control.FormatRequest) (*control.FormatRequest, error) {
	r, err := req.Post(fmt.Sprintf("%s/format/%d", c.ApiPrefix, pad), req.BodyJSON(f))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	resolved := &control.FormatRequest{}
	if err = r.ToJSON(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// CtrlGet sends request to get the range and current value of a control
func (c *ApiClient) CtrlGet(name string) (*control.CtrlState, error) {
	r, err := req.Get(fmt.Sprintf("%s/ctrl/%s", c.ApiPrefix, name))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	state := &control.CtrlState{}
	if err = r.ToJSON(state); err != nil {
		return nil, err
	}
	return state, nil
}

// CtrlSet sends request to set the value of a control
func (c *ApiClient) CtrlSet(name string, value int64) error {
	body := &control.CtrlValue{Value: value}
	r, err := req.Post(fmt.Sprintf("%s/ctrl/%s", c.ApiPrefix, name), req.BodyJSON(body))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}

// Stream sends request to start or stop streaming
func (c *ApiClient) Stream(action string) error {
	r, err := req.Post(fmt.Sprintf("%s/stream/%s", c.ApiPrefix, action))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}

// RegGet sends request to get the last value written to a register
func (c *ApiClient) RegGet(addr string, live bool) (string, error) {
	url := fmt.Sprintf("%s/reg/%s", c.ApiPrefix, addr)
	if live {
		url += "?live=true"
	}
	r, err := req.Get(url)
	if err != nil {
		return "", err
	}
	if r.Response().StatusCode != 200 {
		return "", errors.New(r.Response().Status)
	}
	reg := &control.RegHex{}
	if err = r.ToJSON(reg); err != nil {
		return "", err
	}
	return reg.Value, nil
}

// RegGetAll sends request to get the whole register shadow
func (c *ApiClient) RegGetAll() (map[string]string, error) {
	r, err := req.Get(fmt.Sprintf("%s/reg", c.ApiPrefix))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var regs []*control.RegHex
	if err = r.ToJSON(&regs); err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, reg := range regs {
		result[reg.Addr] = reg.Value
	}
	return result, nil
}

// RegSet sends request to write a value to a register
func (c *ApiClient) RegSet(addr, value string) error {
	reg := &control.RegHex{
		Addr:  addr,
		Value: value,
	}
	r, err := req.Post(fmt.Sprintf("%s/reg/%s", c.ApiPrefix, addr), req.BodyJSON(reg))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}
