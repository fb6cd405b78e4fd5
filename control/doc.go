// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime configuration, metrics, debug introspection and allocation tracing
// around the hioload-alloc heap adapter.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, validated updates and reload listeners
//   - Metrics registry
//   - Debug probe registration, including platform memory probes
//   - Tracer, a GlobalAllocator decorator counting operations and keeping a
//     bounded history of allocation failures
//
// The adapter in package heap never logs; logging happens here, through the
// zap logger configured with SetLogger.
package control
