// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mlsolid is a client for the mlsolid experiment-tracking and
// model-registry server.
//
// A [Client] is bound to a server address and exposes one method per server
// operation. Runs are scoped: [Client.StartRun] creates a run, hands it to a
// callback and ends it on the server when the callback returns, fails or
// panics.
//
//	client, err := mlsolid.New("localhost:5000")
//	if err != nil {
//		return err
//	}
//
//	err = client.StartRun(ctx, "my_experiment", func(run *mlsolid.Run) error {
//		if err := run.Log(ctx, map[string]any{"mae": 0.2333, "loss": 100.0}); err != nil {
//			return err
//		}
//		return run.AddModel(ctx, "./mobile_sam.pt")
//	})
//
// Registry mutations ([Client.CreateModelRegistry], [Client.AddModel])
// report failure with a false result. Every other operation returns an
// error that matches [ErrBadRequest], [ErrNotFound] or [ErrInternal] via
// [errors.Is].
package mlsolid
