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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fentec-project/fahe/bench"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in benchmark presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range bench.Presets {
				fmt.Printf("%-28s %-6s lambda=%-4d mMax=%-4d alpha=%-3d additions=%d\n",
					p.Name, p.Variant, p.Lambda, p.MMax, p.Alpha, p.NumAdditions)
			}
			return nil
		},
	}
}
