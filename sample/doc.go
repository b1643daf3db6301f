/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sample draws values from probability distributions that are
// known only through their log-density functions.
//
// Package sample provides the Sampler interface along with the
// Rejection sampler, its primary implementation. The target
// distribution p is described by its log-density; candidates are drawn
// from a caller-supplied proposal distribution q whose density must
// upper-bound p everywhere, and are accepted or rejected by comparing
// a uniform draw under q's height against p. All density arithmetic
// happens in log space for numerical stability.
//
// Samplers in this package can be used, for instance, to fill the
// vector and matrix containers of the data package with draws from
// the desired distribution.
package sample
