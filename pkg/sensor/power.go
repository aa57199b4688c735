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

package sensor

import (
	"time"
)

// Power drives the sensor's supplies, external clock and reset line. Both
// calls block and may sleep; they run with the sensor lock held. PowerOn
// must leave the chip out of reset and settled for register access.
type Power interface {
	PowerOn() error
	PowerOff()
}

// SettlePower is the Power used when supplies and reset are managed
// outside this process (always-on camera rails). It only waits out the
// reset settle time on power-on.
type SettlePower struct{}

func (SettlePower) PowerOn() error {
	time.Sleep(XCLRMinDelayUs * time.Microsecond)
	return nil
}

func (SettlePower) PowerOff() {}
