// Copyright (c) 2026, LinguaKit Labs. (https://www.linguakit.dev).
//
// LinguaKit Labs licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package resources

// CanonicalInstructions is the base-language usage guide shown in the client.
// Translations must preserve the numbered list markers and the markdown
// emphasis markers.
const CanonicalInstructions = `**How to practice your pronunciation**

1. Pick a *topic* and a *target language*, then press **Generate Words**.
2. Tap any word card to hear its native pronunciation.
3. Press the *microphone* button and say the word out loud.
4. The recording stops by itself after a short moment of silence.
5. You will get a score from 1 to 100 and personal feedback on your attempt.
6. Keep practicing until you are happy with your score, then try the next word!`
