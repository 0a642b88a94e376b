/*
Copyright The Jenkins Plugin Downloader Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package downloader fetches Jenkins plugin artifacts from download
// mirrors.
//
// PluginDownloader retrieves one artifact, walking the mirror rotation
// on failure. A mirror is abandoned when it cannot be reached, answers
// with a bad status, delivers fewer bytes than the response declared,
// or slows below a minimum transfer rate; the next mirror then restarts
// the artifact from byte zero.
//
// Manager sits above it and downloads a plugin together with its
// transitive required dependencies, dependencies first, each exactly
// once per run.
package downloader
