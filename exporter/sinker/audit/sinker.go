// Copyright 2026 The x12stream Authors
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

// Package audit sinks the audit processor's bson.D documents to a
// MongoDB collection, one InsertOne per ParseReport (one per engine Run).
package audit

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x12stream/x12parse/common"
	"github.com/x12stream/x12parse/exporter"
)

func init() {
	exporter.Register(common.RecordAudit, New)
}

type Sinker struct {
	cli  *mongo.Client
	coll *mongo.Collection
	cfg  *exporter.AuditConfig
}

func New(conf exporter.Config) (exporter.Sinker, error) {
	cfg := &conf.Audit
	cfg.Validate()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Sinker{
		cli:  cli,
		coll: cli.Database(cfg.Database).Collection(cfg.Collection),
		cfg:  cfg,
	}, nil
}

func (s *Sinker) Name() common.RecordType {
	return common.RecordAudit
}

func (s *Sinker) Sink(data any) error {
	doc, ok := data.(bson.D)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()

	_, err := s.coll.InsertOne(ctx, doc)
	return err
}

func (s *Sinker) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	s.cli.Disconnect(ctx)
}
