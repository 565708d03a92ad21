// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vestingd/fault"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Accounts             *PoolHandle `prefix:"A"`
	Ledgers              *PoolHandle `prefix:"L"`
	Counters             *PoolHandle `prefix:"K"`
	OwnerNextCount       *PoolHandle `prefix:"N"`
	OwnerList            *PoolHandle `prefix:"O"`
	BeneficiaryNextCount *PoolHandle `prefix:"M"`
	BeneficiaryList      *PoolHandle `prefix:"B"`
	Tokens               *PoolHandle `prefix:"R"`
	Balances             *PoolHandle `prefix:"T"`
	Operators            *PoolHandle `prefix:"P"`
	Ciphertexts          *PoolHandle `prefix:"X"`
	Grants               *PoolHandle `prefix:"G"`
	Events               *PoolHandle `prefix:"E"`
	Requests             *PoolHandle `prefix:"Q"`
	TestData             *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database with its pools
type Store struct {
	Pool Pools

	log      *logger.L
	readOnly bool

	// serialises write transactions
	writer sync.Mutex

	sync.RWMutex
	db      *leveldb.DB
	batch   *leveldb.Batch
	pending *pending
}

// Open - open up the named database
//
// an empty database is tagged with the current version
func Open(name string, readOnly bool) (*Store, error) {

	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q is not initialised", name)
			return nil, fault.ErrDatabaseVersion
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	} else if version < currentDBVersion {
		log.Criticalf("database version: %d < current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	s := &Store{
		log:      log,
		readOnly: readOnly,
		db:       db,
		batch:    new(leveldb.Batch),
		pending:  newPending(),
	}

	err = s.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened: %q  version: 0x%x  read only: %t", name, currentDBVersion, readOnly)

	ok = true // prevent db close
	return s, nil
}

// scan the pool struct and create a handle for each tagged field
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	seen := make(map[byte]string)

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		if name, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has duplicate prefix: %q with: %s", fieldInfo.Name, prefixTag, name)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.writer.Lock()
	defer s.writer.Unlock()

	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
		s.log.Flush()
	}
}

// IsReadOnly - true if opened for reading only
func (s *Store) IsReadOnly() bool {
	return s.readOnly
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
