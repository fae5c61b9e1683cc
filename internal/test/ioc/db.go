// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testioc

import (
	"sync"

	"github.com/ecodeclub/hireflow/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var (
	db     *egorm.Component
	dbOnce sync.Once
)

// InitDB 连上 local.yaml 里面的 MySQL，等到数据库可用才返回
func InitDB() *egorm.Component {
	dbOnce.Do(func() {
		loadConfig()
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}
